package store

import (
	"context"
	"fmt"

	"flightlog-service/internal/domain/repository"
	"flightlog-service/internal/infrastructure/config"
	"flightlog-service/internal/infrastructure/persistence"
	repoImpl "flightlog-service/internal/interface/repository"
	"flightlog-service/pkg/logger"
)

// Stores holds the repositories of the service and the handles behind them
type Stores struct {
	Flights  repository.FlightRecordRepository
	Rosters  repository.RosterRepository
	Aircraft repository.AircraftRepository

	closers []func(context.Context) error
}

// Open connects the flight store selected by cfg.FlightStore and the
// PostgreSQL roster store, creating missing tables
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Stores, error) {
	s := &Stores{}

	log.Info("Connecting to PostgreSQL roster store")
	gormDB, err := persistence.NewGormDB(cfg.PostgresURI)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func(context.Context) error { return persistence.CloseGormDB(gormDB) })

	if err := repoImpl.MigrateGormModels(gormDB); err != nil {
		s.Close(ctx)
		return nil, fmt.Errorf("migrate roster tables: %w", err)
	}
	s.Rosters = repoImpl.NewGormRosterRepository(gormDB)
	s.Aircraft = repoImpl.NewGormAircraftRepository(gormDB)

	switch cfg.FlightStore {
	case config.FlightStorePostgres:
		log.Info("Connecting to PostgreSQL flight store")
		pool, err := persistence.NewPgxPool(ctx, cfg.PostgresURI)
		if err != nil {
			s.Close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { pool.Close(); return nil })

		flights := repoImpl.NewPostgresFlightRecordRepository(pool)
		if err := flights.EnsureSchema(ctx); err != nil {
			s.Close(ctx)
			return nil, err
		}
		s.Flights = flights

	default:
		log.Info("Connecting to MongoDB flight store")
		client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			s.Close(ctx)
			return nil, fmt.Errorf("connect mongodb: %w", err)
		}
		s.closers = append(s.closers, client.Disconnect)

		flights := repoImpl.NewMongoFlightRecordRepository(persistence.GetDatabase(client, cfg.MongoDB))
		if err := flights.EnsureIndexes(ctx); err != nil {
			s.Close(ctx)
			return nil, err
		}
		s.Flights = flights
	}

	log.Info("Stores ready", "flightStore", cfg.FlightStore)
	return s, nil
}

// Close releases every connection in reverse order of opening
func (s *Stores) Close(ctx context.Context) error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
