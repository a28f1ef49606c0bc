package repository

import (
	"context"

	"flightlog-service/internal/domain/entity"
)

// AircraftRepository defines the interface for manual aircraft hour operations
type AircraftRepository interface {
	ListManualHours(ctx context.Context) ([]entity.ManualHourEntry, error)
	RecordHours(ctx context.Context, aircraftID string, date int64, hours int) error
	HourLog(ctx context.Context, aircraftID string) ([]entity.HourLogEntry, error)
	TotalHours(ctx context.Context, aircraftID string) (int, error)
}
