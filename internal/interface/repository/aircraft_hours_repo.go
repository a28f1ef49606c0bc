package repository

import (
	"context"
	"fmt"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAircraftRepository implements the AircraftRepository interface
type GormAircraftRepository struct {
	db *gorm.DB
}

// NewGormAircraftRepository creates a new GORM aircraft hours repository
func NewGormAircraftRepository(db *gorm.DB) repository.AircraftRepository {
	return &GormAircraftRepository{
		db: db,
	}
}

// AircraftHourLog GORM model for database mapping
type AircraftHourLog struct {
	ID         uint   `gorm:"primaryKey"`
	AircraftID string `gorm:"column:aircraft_id;not null;index"`
	Date       int64  `gorm:"column:date;not null"`
	Hours      int    `gorm:"column:hours;not null"`
	CreatedAt  time.Time
}

// TableName overrides the default table name
func (AircraftHourLog) TableName() string {
	return "m_aircraft_hour_log"
}

// MigrateGormModels creates or updates the roster and hour log tables
func MigrateGormModels(db *gorm.DB) error {
	return db.AutoMigrate(&RosterEntries{}, &AircraftHourLog{})
}

// ListManualHours returns the summed hour log of every aircraft on the roster
func (r *GormAircraftRepository) ListManualHours(ctx context.Context) ([]entity.ManualHourEntry, error) {
	var rows []struct {
		AircraftID   string
		AircraftName string
		TotalHours   int
	}

	result := r.db.WithContext(ctx).
		Table(RosterEntries{}.TableName()+" AS r").
		Select("r.id AS aircraft_id, r.name AS aircraft_name, COALESCE(SUM(h.hours), 0) AS total_hours").
		Joins("LEFT JOIN "+AircraftHourLog{}.TableName()+" AS h ON h.aircraft_id = r.id").
		Where("r.kind = ?", string(entity.RosterAircraft)).
		Group("r.id, r.name").
		Order("r.name").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.ManualHourEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entity.ManualHourEntry{
			AircraftID:   row.AircraftID,
			AircraftName: row.AircraftName,
			TotalHours:   row.TotalHours,
		})
	}
	return entries, nil
}

// RecordHours appends an hour log entry
func (r *GormAircraftRepository) RecordHours(ctx context.Context, aircraftID string, date int64, hours int) error {
	model := AircraftHourLog{
		AircraftID: aircraftID,
		Date:       date,
		Hours:      hours,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("insert aircraft hours: %w", err)
	}
	return nil
}

// HourLog returns the hour log of an aircraft, oldest first
func (r *GormAircraftRepository) HourLog(ctx context.Context, aircraftID string) ([]entity.HourLogEntry, error) {
	var models []AircraftHourLog
	result := r.db.WithContext(ctx).
		Where("aircraft_id = ?", aircraftID).
		Order("date, id").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.HourLogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, entity.HourLogEntry{
			ID:         m.ID,
			AircraftID: m.AircraftID,
			Date:       m.Date,
			Hours:      m.Hours,
		})
	}
	return entries, nil
}

// TotalHours returns the sum of an aircraft's hour log
func (r *GormAircraftRepository) TotalHours(ctx context.Context, aircraftID string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&AircraftHourLog{}).
		Where("aircraft_id = ?", aircraftID).
		Select("COALESCE(SUM(hours), 0)").
		Row().
		Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
