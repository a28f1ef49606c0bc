package usecase

import (
	"errors"
	"fmt"

	"flightlog-service/internal/domain/repository"
)

var (
	// ErrInvalidInput wraps every validation failure of user supplied data
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists is returned when a roster name is already taken
	ErrAlreadyExists = errors.New("already exists")
)

func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// unavailable marks a failed read as a data availability problem.
// Not found errors pass through unchanged.
func unavailable(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDataUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", repository.ErrDataUnavailable, op, err)
}
