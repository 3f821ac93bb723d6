// Package store maps canonical venue, check-in and save objects to the
// backend's row schema. The row representation (snake_case columns,
// string-typed rating) stays behind this boundary; business logic only sees
// canonical shapes.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("resource not found")
	QueryTimeoutDuration = time.Second * 5
)

// Save toggle outcomes.
const (
	ActionSaved   = "saved"
	ActionRemoved = "removed"
)

type Storage struct {
	SavedVenues interface {
		List(ctx context.Context) ([]SavedVenue, error)
		GetByID(ctx context.Context, id string) (*SavedVenue, error)
		Create(ctx context.Context, sv *SavedVenue) error
		Update(ctx context.Context, id string, updates map[string]any) error
		Delete(ctx context.Context, id string) (bool, error)
		DeleteMany(ctx context.Context, ids []string) (int64, error)
	}
	CheckIns interface {
		Create(ctx context.Context, c *CheckIn) error
		ListByUser(ctx context.Context, userID string) ([]CheckIn, error)
		Update(ctx context.Context, id, userID string, updates map[string]any) error
		Delete(ctx context.Context, id, userID string) error
		CountByUser(ctx context.Context, userID string) (int, error)
	}
	Saves interface {
		Toggle(ctx context.Context, s *Save) (string, error)
		ListByUser(ctx context.Context, userID string) ([]Save, error)
		CountByUser(ctx context.Context, userID string) (int, error)
	}
}

func NewStorage(db *sql.DB) Storage {
	return Storage{
		SavedVenues: &SavedVenuesStore{db},
		CheckIns:    &CheckInsStore{db},
		Saves:       &SavesStore{db},
	}
}
