package repository

import (
	"context"
	"fmt"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/pkg/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flightRecordsSchema = `
CREATE TABLE IF NOT EXISTS flight_records (
	seq            BIGSERIAL PRIMARY KEY,
	id             TEXT NOT NULL UNIQUE,
	date           BIGINT NOT NULL,
	student        TEXT NOT NULL,
	student_id     TEXT NOT NULL DEFAULT '',
	instructor     TEXT NOT NULL,
	instructor_id  TEXT NOT NULL DEFAULT '',
	aircraft       TEXT NOT NULL,
	aircraft_id    TEXT NOT NULL DEFAULT '',
	exercise       TEXT NOT NULL,
	exercise_id    TEXT NOT NULL DEFAULT '',
	flight_type    TEXT NOT NULL,
	takeoff_time   TEXT NOT NULL,
	landing_time   TEXT NOT NULL,
	duration       INTEGER NOT NULL CHECK (duration >= 0),
	landing_type   TEXT NOT NULL,
	landing_count  INTEGER NOT NULL CHECK (landing_count >= 1),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_flight_records_date ON flight_records (date);
CREATE INDEX IF NOT EXISTS idx_flight_records_student ON flight_records (student);
CREATE INDEX IF NOT EXISTS idx_flight_records_aircraft ON flight_records (aircraft);
`

var flightRecordColumns = []string{
	"id", "date",
	"student", "student_id",
	"instructor", "instructor_id",
	"aircraft", "aircraft_id",
	"exercise", "exercise_id",
	"flight_type", "takeoff_time", "landing_time", "duration",
	"landing_type", "landing_count",
}

// PostgresFlightRecordRepository implements FlightRecordRepository on PostgreSQL
type PostgresFlightRecordRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewPostgresFlightRecordRepository creates a new PostgreSQL flight record repository
func NewPostgresFlightRecordRepository(db *pgxpool.Pool) *PostgresFlightRecordRepository {
	return &PostgresFlightRecordRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var _ repository.FlightRecordRepository = (*PostgresFlightRecordRepository)(nil)

// EnsureSchema creates the flight_records table when missing
func (r *PostgresFlightRecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, flightRecordsSchema); err != nil {
		return fmt.Errorf("create flight_records schema: %w", err)
	}
	return nil
}

// List returns every flight record in insertion order
func (r *PostgresFlightRecordRepository) List(ctx context.Context) ([]entity.FlightRecord, error) {
	return r.query(ctx, r.selectFlights())
}

// ListFiltered returns the flight records matching filter in insertion order
func (r *PostgresFlightRecordRepository) ListFiltered(ctx context.Context, filter entity.FlightFilter) ([]entity.FlightRecord, error) {
	query := r.selectFlights()
	if filter.Month != "" {
		start, end, err := utils.MonthBounds(filter.Month)
		if err != nil {
			return nil, err
		}
		query = query.Where(sq.GtOrEq{"date": start}).Where(sq.Lt{"date": end})
	}
	if filter.Student != "" {
		query = query.Where(sq.Eq{"student": filter.Student})
	}
	if filter.Aircraft != "" {
		query = query.Where(sq.Eq{"aircraft": filter.Aircraft})
	}
	return r.query(ctx, query)
}

// Create inserts a new flight record
func (r *PostgresFlightRecordRepository) Create(ctx context.Context, record *entity.FlightRecord) error {
	if record == nil {
		return fmt.Errorf("flight record is nil")
	}
	if record.ID == "" {
		return fmt.Errorf("flight record id is empty")
	}

	query := r.sb.
		Insert("flight_records").
		Columns(flightRecordColumns...).
		Values(
			record.ID, record.Date,
			record.Student, record.StudentID,
			record.Instructor, record.InstructorID,
			record.Aircraft, record.AircraftID,
			record.Exercise, record.ExerciseID,
			string(record.FlightType), record.TakeoffTime, record.LandingTime, record.Duration,
			string(record.LandingType), record.LandingCount,
		)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build insert flight record sql: %w", err)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert flight record: %w", err)
	}
	return nil
}

func (r *PostgresFlightRecordRepository) selectFlights() sq.SelectBuilder {
	return r.sb.
		Select(flightRecordColumns...).
		From("flight_records").
		OrderBy("seq ASC")
}

func (r *PostgresFlightRecordRepository) query(ctx context.Context, query sq.SelectBuilder) ([]entity.FlightRecord, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select flight records sql: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("select flight records: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.FlightRecord, error) {
		var f entity.FlightRecord
		var flightType, landingType string
		err := row.Scan(
			&f.ID, &f.Date,
			&f.Student, &f.StudentID,
			&f.Instructor, &f.InstructorID,
			&f.Aircraft, &f.AircraftID,
			&f.Exercise, &f.ExerciseID,
			&flightType, &f.TakeoffTime, &f.LandingTime, &f.Duration,
			&landingType, &f.LandingCount,
		)
		f.FlightType = entity.FlightType(flightType)
		f.LandingType = entity.LandingType(landingType)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan flight records: %w", err)
	}
	if records == nil {
		records = []entity.FlightRecord{}
	}
	return records, nil
}
