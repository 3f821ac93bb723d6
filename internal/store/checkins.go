package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CheckIn ties a user to a venue visit. The venue fields are a snapshot
// captured at check-in time, not a live reference: the venue may later
// change or disappear from the provider.
type CheckIn struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	VenueID       string    `json:"venue_id"`
	VenueName     string    `json:"venue_name"`
	VenueCategory string    `json:"venue_category"`
	VenueAddress  string    `json:"venue_address"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Image         string    `json:"image"`
	Rating        int       `json:"rating"` // 1-5, required
	Comment       string    `json:"comment,omitempty"`
	Photos        []string  `json:"photos,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CheckInsStore struct {
	db *sql.DB
}

func (s *CheckInsStore) Create(ctx context.Context, c *CheckIn) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	c.ID = uuid.NewString()
	query := `
		INSERT INTO checkins (id, user_id, venue_id, venue_name, venue_category,
		                      venue_address, lat, lng, image, rating, comment, photos)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	return s.db.QueryRowContext(ctx, query,
		c.ID, c.UserID, c.VenueID, c.VenueName, c.VenueCategory, c.VenueAddress,
		c.Lat, c.Lng, c.Image, c.Rating, c.Comment, pq.Array(c.Photos),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (s *CheckInsStore) ListByUser(ctx context.Context, userID string) ([]CheckIn, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		SELECT id, user_id, venue_id, venue_name, venue_category, venue_address,
		       lat, lng, image, rating, comment, photos, created_at, updated_at
		FROM checkins
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	defer rows.Close()

	var out []CheckIn
	for rows.Next() {
		var c CheckIn
		var comment sql.NullString
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.VenueID, &c.VenueName, &c.VenueCategory,
			&c.VenueAddress, &c.Lat, &c.Lng, &c.Image, &c.Rating, &comment,
			pq.Array(&c.Photos), &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan checkin: %w", err)
		}
		c.Comment = comment.String
		out = append(out, c)
	}
	return out, rows.Err()
}

var checkInColumnsAllowed = map[string]bool{
	"rating": true, "comment": true, "photos": true,
}

// Update applies only the provided fields, scoped to the owner. A zero-row
// update means the check-in does not exist or belongs to someone else;
// both report ErrNotFound so ownership is not probeable.
func (s *CheckInsStore) Update(ctx context.Context, id, userID string, updates map[string]any) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setClauses := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+2)
	argCounter := 1

	for field, value := range updates {
		if !checkInColumnsAllowed[field] {
			return fmt.Errorf("invalid field name: %s", field)
		}
		if field == "photos" {
			value = pq.Array(toStringSlice(value))
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, argCounter))
		args = append(args, value)
		argCounter++
	}
	args = append(args, id, userID)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := fmt.Sprintf("UPDATE checkins SET %s, updated_at = NOW() WHERE id = $%d AND user_id = $%d",
		strings.Join(setClauses, ", "), argCounter, argCounter+1)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update checkin: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned check-in. Deleting an id that is already gone is
// not an error.
func (s *CheckInsStore) Delete(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `DELETE FROM checkins WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete checkin: %w", err)
	}
	return nil
}

func (s *CheckInsStore) CountByUser(ctx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM checkins WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
