package repository

import (
	"context"

	"flightlog-service/internal/domain/entity"
)

// FlightRecordRepository defines the interface for flight record operations
type FlightRecordRepository interface {
	// List returns every flight record in insertion order
	List(ctx context.Context) ([]entity.FlightRecord, error)
	// ListFiltered applies the filter on the store side, preserving insertion order
	ListFiltered(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error)
	Create(ctx context.Context, record *entity.FlightRecord) error
}
