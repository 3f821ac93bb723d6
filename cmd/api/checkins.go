package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sydneyplanner/internal/store"
)

type createCheckInPayload struct {
	VenueID       string   `json:"venue_id" validate:"required"`
	VenueName     string   `json:"venue_name" validate:"required,max=200"`
	VenueCategory string   `json:"venue_category" validate:"max=100"`
	VenueAddress  string   `json:"venue_address" validate:"max=300"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Image         string   `json:"image" validate:"omitempty,url"`
	Rating        int      `json:"rating" validate:"required,min=1,max=5"`
	Comment       string   `json:"comment" validate:"max=500"`
	Photos        []string `json:"photos" validate:"max=10,dive,url"`
}

func (app *application) createCheckInHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload createCheckInPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	checkIn := &store.CheckIn{
		UserID:        user.ID,
		VenueID:       payload.VenueID,
		VenueName:     payload.VenueName,
		VenueCategory: payload.VenueCategory,
		VenueAddress:  payload.VenueAddress,
		Lat:           payload.Lat,
		Lng:           payload.Lng,
		Image:         payload.Image,
		Rating:        payload.Rating,
		Comment:       payload.Comment,
		Photos:        payload.Photos,
	}

	if err := app.store.CheckIns.Create(r.Context(), checkIn); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, checkIn); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCheckInsHandler returns the caller's check-in history. Anonymous
// callers get an empty list rather than a 401 so the feed renders before
// sign-in.
func (app *application) listCheckInsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	checkIns := []store.CheckIn{}
	if user != nil {
		var err error
		checkIns, err = app.store.CheckIns.ListByUser(r.Context(), user.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		if checkIns == nil {
			checkIns = []store.CheckIn{}
		}
	}

	data := map[string]any{
		"checkins": checkIns,
		"count":    len(checkIns),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// validateCheckInUpdates holds a partial update to the same constraints the
// create path enforces. JSON numbers arrive as float64.
func validateCheckInUpdates(updates map[string]any) error {
	if rating, ok := updates["rating"]; ok {
		f, isNum := rating.(float64)
		if !isNum || f != float64(int(f)) || f < 1 || f > 5 {
			return fmt.Errorf("rating must be a whole number between 1 and 5")
		}
	}
	if comment, ok := updates["comment"]; ok {
		s, isStr := comment.(string)
		if !isStr || len(s) > 500 {
			return fmt.Errorf("comment must be a string of at most 500 characters")
		}
	}
	if photos, ok := updates["photos"]; ok {
		list, isList := photos.([]any)
		if !isList || len(list) > 10 {
			return fmt.Errorf("photos must be a list of at most 10 URLs")
		}
		for _, item := range list {
			s, isStr := item.(string)
			if !isStr {
				return fmt.Errorf("photos must be a list of at most 10 URLs")
			}
			if err := Validate.Var(s, "url"); err != nil {
				return fmt.Errorf("invalid photo URL: %s", s)
			}
		}
	}
	return nil
}

func (app *application) updateCheckInHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	checkinID := chi.URLParam(r, "checkinID")

	var updates map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1_048_578)).Decode(&updates); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := validateCheckInUpdates(updates); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.CheckIns.Update(r.Context(), checkinID, user.ID, updates); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	data := map[string]any{
		"id":      checkinID,
		"updated": true,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) deleteCheckInHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	checkinID := chi.URLParam(r, "checkinID")

	if err := app.store.CheckIns.Delete(r.Context(), checkinID, user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"id":      checkinID,
		"deleted": true,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
