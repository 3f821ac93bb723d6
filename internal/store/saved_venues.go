package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sydneyplanner/internal/venue"
)

// SavedVenue is a venue row promoted into the durable store, distinct from a
// user's Save bookmark. It owns an editable copy of venue fields plus the
// creator identity.
type SavedVenue struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Address     string          `json:"address"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Rating      string          `json:"rating"`
	Distance    string          `json:"distance"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Phone       string          `json:"phone,omitempty"`
	Website     string          `json:"website,omitempty"`
	Hours       json.RawMessage `json:"hours,omitempty"`
	Photos      []string        `json:"photos,omitempty"`
	Tips        json.RawMessage `json:"tips,omitempty"`
	Categories  []string        `json:"categories,omitempty"`
	AddedBy     string          `json:"added_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SavedVenueFromVenue maps a canonical venue onto the row shape, applying
// the row defaults: missing rating becomes "0", arrays stay empty, extended
// structures are carried as JSON.
func SavedVenueFromVenue(v venue.Venue, addedBy string) *SavedVenue {
	sv := &SavedVenue{
		ID:          v.ID,
		Name:        v.Name,
		Category:    v.Category,
		Address:     v.Address,
		Lat:         v.Lat,
		Lng:         v.Lng,
		Rating:      v.Rating,
		Distance:    v.Distance,
		Image:       v.Image,
		Description: v.Description,
		Source:      v.Source,
		Phone:       v.Phone,
		Website:     v.Website,
		Photos:      v.Photos,
		Categories:  v.Categories,
		AddedBy:     addedBy,
	}
	if sv.ID == "" {
		sv.ID = "saved_" + uuid.NewString()
	}
	if sv.Rating == "" {
		sv.Rating = "0"
	}
	if v.Hours != nil {
		if data, err := json.Marshal(v.Hours); err == nil {
			sv.Hours = data
		}
	}
	if len(v.Tips) > 0 {
		if data, err := json.Marshal(v.Tips); err == nil {
			sv.Tips = data
		}
	}
	return sv
}

// Venue converts the row back to the canonical shape.
func (sv SavedVenue) Venue() venue.Venue {
	v := venue.Venue{
		ID:          sv.ID,
		Name:        sv.Name,
		Category:    sv.Category,
		Address:     sv.Address,
		Lat:         sv.Lat,
		Lng:         sv.Lng,
		Rating:      sv.Rating,
		Distance:    sv.Distance,
		Image:       sv.Image,
		Description: sv.Description,
		Source:      sv.Source,
		Phone:       sv.Phone,
		Website:     sv.Website,
		Photos:      sv.Photos,
		Categories:  sv.Categories,
		Style:       venue.StyleFor(sv.Category),
	}
	if len(sv.Hours) > 0 {
		var hours venue.Hours
		if err := json.Unmarshal(sv.Hours, &hours); err == nil {
			v.Hours = &hours
		}
	}
	if len(sv.Tips) > 0 {
		var tips []string
		if err := json.Unmarshal(sv.Tips, &tips); err == nil {
			v.Tips = tips
		}
	}
	return v
}

type SavedVenuesStore struct {
	db *sql.DB
}

const savedVenueColumns = `id, name, category, address, lat, lng, rating, distance, image,
	       description, source, phone, website, hours, photos, tips, categories,
	       added_by, created_at, updated_at`

func (s *SavedVenuesStore) List(ctx context.Context) ([]SavedVenue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		SELECT ` + savedVenueColumns + `
		FROM saved_venues
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list saved venues: %w", err)
	}
	defer rows.Close()

	var out []SavedVenue
	for rows.Next() {
		sv, err := scanSavedVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sv)
	}
	return out, rows.Err()
}

func (s *SavedVenuesStore) GetByID(ctx context.Context, id string) (*SavedVenue, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		SELECT ` + savedVenueColumns + `
		FROM saved_venues
		WHERE id = $1
	`
	sv, err := scanSavedVenue(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get saved venue: %w", err)
	}
	return sv, nil
}

func (s *SavedVenuesStore) Create(ctx context.Context, sv *SavedVenue) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
		INSERT INTO saved_venues (id, name, category, address, lat, lng, rating, distance,
		                          image, description, source, phone, website, hours, photos,
		                          tips, categories, added_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET updated_at = NOW()
		RETURNING created_at, updated_at
	`
	return s.db.QueryRowContext(ctx, query,
		sv.ID, sv.Name, sv.Category, sv.Address, sv.Lat, sv.Lng, sv.Rating, sv.Distance,
		sv.Image, sv.Description, sv.Source, sv.Phone, sv.Website, nullJSON(sv.Hours),
		pq.Array(sv.Photos), nullJSON(sv.Tips), pq.Array(sv.Categories), sv.AddedBy,
	).Scan(&sv.CreatedAt, &sv.UpdatedAt)
}

// savedVenueColumnsAllowed is the partial-update allow-list; requests naming
// any other column are rejected before touching the database.
var savedVenueColumnsAllowed = map[string]bool{
	"name": true, "category": true, "address": true, "lat": true, "lng": true,
	"rating": true, "distance": true, "image": true, "description": true,
	"phone": true, "website": true, "hours": true, "photos": true,
	"tips": true, "categories": true,
}

// Update applies only the fields present in updates and stamps updated_at.
func (s *SavedVenuesStore) Update(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setClauses := make([]string, 0, len(updates))
	args := make([]any, 0, len(updates)+1)
	argCounter := 1

	for field, value := range updates {
		if !savedVenueColumnsAllowed[field] {
			return fmt.Errorf("invalid field name: %s", field)
		}
		switch field {
		case "photos", "categories":
			value = pq.Array(toStringSlice(value))
		case "hours", "tips":
			data, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("invalid %s payload: %w", field, err)
			}
			value = data
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, argCounter))
		args = append(args, value)
		argCounter++
	}
	args = append(args, id)

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := fmt.Sprintf("UPDATE saved_venues SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(setClauses, ", "), argCounter)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update saved venue: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete reports whether a row was removed. Deleting a missing id is not an
// error; the caller decides what a zero-row delete means.
func (s *SavedVenuesStore) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `DELETE FROM saved_venues WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete saved venue: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (s *SavedVenuesStore) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `DELETE FROM saved_venues WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("bulk delete saved venues: %w", err)
	}
	rows, _ := result.RowsAffected()
	return rows, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSavedVenue(row rowScanner) (*SavedVenue, error) {
	var sv SavedVenue
	var phone, website sql.NullString
	var hours, tips []byte

	err := row.Scan(
		&sv.ID, &sv.Name, &sv.Category, &sv.Address, &sv.Lat, &sv.Lng, &sv.Rating,
		&sv.Distance, &sv.Image, &sv.Description, &sv.Source, &phone, &website,
		&hours, pq.Array(&sv.Photos), &tips, pq.Array(&sv.Categories),
		&sv.AddedBy, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sv.Phone = phone.String
	sv.Website = website.String
	if len(hours) > 0 {
		sv.Hours = json.RawMessage(hours)
	}
	if len(tips) > 0 {
		sv.Tips = json.RawMessage(tips)
	}
	return &sv, nil
}

func nullJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
