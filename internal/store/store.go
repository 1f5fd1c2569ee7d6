package store

import (
	"context"

	"friends-corner/internal/model"

	"gorm.io/gorm"
)

// Filter selects which slice of a submission table a list call returns.
type Filter int

const (
	FilterAll Filter = iota
	FilterApproved
	FilterPending
)

// Store is the record access layer. All methods translate database errors
// into the taxonomy in errors.go.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// InitSchema creates the four tables if they do not exist. It is run once at
// startup and is safe to run again.
func (s *Store) InitSchema(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&model.Member{},
		&model.Memory{},
		&model.Photo{},
		&model.Song{},
	)
	return mapError("init schema", err)
}

func (s *Store) applyFilter(q *gorm.DB, f Filter) *gorm.DB {
	switch f {
	case FilterApproved:
		return q.Where("approved = ?", true)
	case FilterPending:
		return q.Where("approved = ?", false)
	default:
		return q
	}
}
