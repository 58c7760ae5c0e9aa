package repository

import (
	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

// ResourceRepository is the generic persistence engine behind the ten
// entity endpoints. Each instance is configured with the entity's id column
// and an optional ORDER BY clause for listing; everything else comes from
// the model's gorm tags.
type ResourceRepository[T models.Resource[T]] struct {
	db       *gorm.DB
	idColumn string
	orderBy  string
}

// NewResourceRepo builds a repository for one entity. orderBy may be empty
// for entities listed in insertion order.
func NewResourceRepo[T models.Resource[T]](db *gorm.DB, idColumn, orderBy string) *ResourceRepository[T] {
	return &ResourceRepository[T]{
		db:       db,
		idColumn: idColumn,
		orderBy:  orderBy,
	}
}

// ListAll returns every row for the entity. The result is never nil so an
// empty table serializes as an empty JSON array.
func (r *ResourceRepository[T]) ListAll() ([]T, error) {
	rows := []T{}
	query := r.db
	if r.orderBy != "" {
		query = query.Order(r.orderBy)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns the rows matching id, array-shaped. A missing id yields
// an empty slice, not an error.
func (r *ResourceRepository[T]) FindByID(id int) ([]T, error) {
	rows := []T{}
	if err := r.db.Where(r.idColumn+" = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new row and backfills the auto-assigned id on record.
func (r *ResourceRepository[T]) Create(record *T) error {
	return r.db.Create(record).Error
}

// Update fully replaces the row identified by id. All columns except the
// primary key are written, zero values included.
func (r *ResourceRepository[T]) Update(id int, record T) error {
	return r.db.Model(new(T)).
		Where(r.idColumn+" = ?", id).
		Select("*").
		Omit(r.idColumn).
		Updates(record).Error
}

// Delete removes the row identified by id. Deleting an id that matches no
// row is not an error; callers do not inspect the affected-row count.
func (r *ResourceRepository[T]) Delete(id int) error {
	return r.db.Where(r.idColumn+" = ?", id).Delete(new(T)).Error
}
