package repository

import (
	"context"

	"flightlog-service/internal/domain/entity"
)

// RosterRepository defines the interface for roster operations
type RosterRepository interface {
	List(ctx context.Context, kind entity.RosterKind) ([]entity.RosterEntry, error)
	Get(ctx context.Context, kind entity.RosterKind, id string) (*entity.RosterEntry, error)
	FindByName(ctx context.Context, kind entity.RosterKind, name string) (*entity.RosterEntry, error)
	Add(ctx context.Context, entry *entity.RosterEntry) error
	Rename(ctx context.Context, kind entity.RosterKind, id, name string) error
	Delete(ctx context.Context, kind entity.RosterKind, id string) error
}
