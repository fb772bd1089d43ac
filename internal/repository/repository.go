package repository

import (
	"fmt"

	"gorm.io/gorm"

	"problem-board-go/internal/model"
)

// Repository wraps all database access for problem entries
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new entry; the store assigns id and created_at
func (r *Repository) Create(entry *model.Entry) error {
	result := r.db.Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to insert entry: %w", result.Error)
	}
	return nil
}

// ListAll returns all entries, newest first. The id tiebreak keeps
// insertion order stable when two rows share a timestamp.
func (r *Repository) ListAll() ([]model.Entry, error) {
	var entries []model.Entry
	result := r.db.Order("created_at DESC, id DESC").Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list entries: %w", result.Error)
	}
	return entries, nil
}

// DeleteByPublicID removes the entry with the given public token.
// Deleting a token that matches nothing is not an error.
func (r *Repository) DeleteByPublicID(token string) error {
	result := r.db.Where("uuid = ?", token).Delete(&model.Entry{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete entry: %w", result.Error)
	}
	return nil
}

// DumpAll returns every column of every row, including email and uuid.
// Intended for administrative inspection only.
func (r *Repository) DumpAll() ([]model.Entry, error) {
	var entries []model.Entry
	result := r.db.Find(&entries)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to dump entries: %w", result.Error)
	}
	return entries, nil
}
