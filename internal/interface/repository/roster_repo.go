package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormRosterRepository implements the RosterRepository interface
type GormRosterRepository struct {
	db *gorm.DB
}

// NewGormRosterRepository creates a new GORM roster repository
func NewGormRosterRepository(db *gorm.DB) repository.RosterRepository {
	return &GormRosterRepository{
		db: db,
	}
}

// RosterEntries GORM model for database mapping
type RosterEntries struct {
	ID        string `gorm:"primaryKey;column:id"`
	Kind      string `gorm:"column:kind;not null;uniqueIndex:idx_roster_kind_name"`
	Name      string `gorm:"column:name;not null;uniqueIndex:idx_roster_kind_name"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (RosterEntries) TableName() string {
	return "m_roster_entries"
}

func (m RosterEntries) toEntity() entity.RosterEntry {
	return entity.RosterEntry{
		ID:        m.ID,
		Kind:      entity.RosterKind(m.Kind),
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// List returns the entries of a roster ordered by name
func (r *GormRosterRepository) List(ctx context.Context, kind entity.RosterKind) ([]entity.RosterEntry, error) {
	var models []RosterEntries
	result := r.db.WithContext(ctx).Where("kind = ?", string(kind)).Order("name").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]entity.RosterEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, m.toEntity())
	}
	return entries, nil
}

// Get finds a roster entry by id
func (r *GormRosterRepository) Get(ctx context.Context, kind entity.RosterKind, id string) (*entity.RosterEntry, error) {
	return r.first(ctx, "kind = ? AND id = ?", string(kind), id)
}

// FindByName finds a roster entry by exact name
func (r *GormRosterRepository) FindByName(ctx context.Context, kind entity.RosterKind, name string) (*entity.RosterEntry, error) {
	return r.first(ctx, "kind = ? AND name = ?", string(kind), name)
}

func (r *GormRosterRepository) first(ctx context.Context, query string, args ...interface{}) (*entity.RosterEntry, error) {
	var model RosterEntries
	result := r.db.WithContext(ctx).Where(query, args...).First(&model)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	entry := model.toEntity()
	return &entry, nil
}

// Add inserts a roster entry
func (r *GormRosterRepository) Add(ctx context.Context, entry *entity.RosterEntry) error {
	model := RosterEntries{
		ID:        entry.ID,
		Kind:      string(entry.Kind),
		Name:      entry.Name,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("insert roster entry: %w", err)
	}
	return nil
}

// Rename changes the name of a roster entry
func (r *GormRosterRepository) Rename(ctx context.Context, kind entity.RosterKind, id, name string) error {
	result := r.db.WithContext(ctx).
		Model(&RosterEntries{}).
		Where("kind = ? AND id = ?", string(kind), id).
		Updates(map[string]interface{}{
			"name":       name,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("rename roster entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a roster entry
func (r *GormRosterRepository) Delete(ctx context.Context, kind entity.RosterKind, id string) error {
	result := r.db.WithContext(ctx).Where("kind = ? AND id = ?", string(kind), id).Delete(&RosterEntries{})
	if result.Error != nil {
		return fmt.Errorf("delete roster entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
