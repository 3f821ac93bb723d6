package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newCheckInsStore(t *testing.T) (*CheckInsStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &CheckInsStore{db}, mock
}

func TestCreateCheckIn(t *testing.T) {
	s, mock := newCheckInsStore(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO checkins").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	c := &CheckIn{
		UserID:    testUserID,
		VenueID:   "syd_2",
		VenueName: "Bondi Beach",
		Rating:    5,
		Comment:   "perfect morning swim",
	}
	if err := s.Create(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected a generated id")
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps from the database")
	}
}

func TestUpdateCheckInScopedToOwner(t *testing.T) {
	s, mock := newCheckInsStore(t)

	// Another user's row: zero rows affected.
	mock.ExpectExec("UPDATE checkins SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Update(context.Background(), "checkin-1", testUserID, map[string]any{"rating": 4})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-owned row, got %v", err)
	}
}

func TestUpdateCheckInRejectsUnknownColumn(t *testing.T) {
	s, _ := newCheckInsStore(t)

	err := s.Update(context.Background(), "checkin-1", testUserID, map[string]any{"user_id": "someone-else"})
	if err == nil {
		t.Fatal("expected error for disallowed column")
	}
}

func TestDeleteCheckInIsIdempotent(t *testing.T) {
	s, mock := newCheckInsStore(t)

	mock.ExpectExec("DELETE FROM checkins").
		WithArgs("checkin-1", testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Delete(context.Background(), "checkin-1", testUserID); err != nil {
		t.Fatalf("deleting a missing checkin must not error, got %v", err)
	}
}
