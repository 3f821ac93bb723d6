package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Save is a user's bookmark on a venue, with denormalized display fields so
// lists render without a join.
type Save struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VenueID   string    `json:"venue_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SavesStore struct {
	db *sql.DB
}

// Toggle saves the venue for the user, or removes the existing save. The
// check-then-act is best effort; the unique (user_id, venue_id) constraint
// backstops a double-click race, and a constraint violation is reported as
// "saved" rather than an error.
func (s *SavesStore) Toggle(ctx context.Context, save *Save) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var existingID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM saves WHERE user_id = $1 AND venue_id = $2`,
		save.UserID, save.VenueID,
	).Scan(&existingID)

	switch {
	case err == nil:
		if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE id = $1`, existingID); err != nil {
			return "", fmt.Errorf("remove save: %w", err)
		}
		return ActionRemoved, nil

	case errors.Is(err, sql.ErrNoRows):
		save.ID = uuid.NewString()
		insert := `
			INSERT INTO saves (id, user_id, venue_id, name, category, image)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, venue_id) DO NOTHING
			RETURNING created_at
		`
		err := s.db.QueryRowContext(ctx, insert,
			save.ID, save.UserID, save.VenueID, save.Name, save.Category, save.Image,
		).Scan(&save.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the race to a concurrent save by the same user.
			return ActionSaved, nil
		}
		if err != nil {
			return "", fmt.Errorf("insert save: %w", err)
		}
		return ActionSaved, nil

	default:
		return "", fmt.Errorf("look up save: %w", err)
	}
}

func (s *SavesStore) ListByUser(ctx context.Context, userID string) ([]Save, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		SELECT id, user_id, venue_id, name, category, image, created_at
		FROM saves
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var out []Save
	for rows.Next() {
		var save Save
		var category, image sql.NullString
		if err := rows.Scan(&save.ID, &save.UserID, &save.VenueID, &save.Name,
			&category, &image, &save.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		save.Category = category.String
		save.Image = image.String
		out = append(out, save)
	}
	return out, rows.Err()
}

func (s *SavesStore) CountByUser(ctx context.Context, userID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(id) FROM saves WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
