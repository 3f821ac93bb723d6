package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sydneyplanner/internal/store"
	"sydneyplanner/internal/venue"
)

func (app *application) listSavedVenuesHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := app.store.SavedVenues.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	venues := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		venues = append(venues, row.Venue())
	}

	data := map[string]any{
		"venues": venues,
		"count":  len(venues),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createSavedVenuesHandler accepts either a single venue object or an array
// of venues in one request body.
func (app *application) createSavedVenuesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1_048_578))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var incoming []venue.Venue
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &incoming); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	} else {
		var one venue.Venue
		if err := json.Unmarshal(trimmed, &one); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		incoming = append(incoming, one)
	}

	if len(incoming) == 0 {
		app.badRequestResponse(w, r, fmt.Errorf("no venues in request body"))
		return
	}

	created := make([]store.SavedVenue, 0, len(incoming))
	for _, v := range incoming {
		if v.Name == "" {
			app.badRequestResponse(w, r, fmt.Errorf("venue name is required"))
			return
		}

		sv := store.SavedVenueFromVenue(v, user.ID)
		if err := app.store.SavedVenues.Create(r.Context(), sv); err != nil {
			app.internalServerError(w, r, err)
			return
		}
		created = append(created, *sv)
	}

	data := map[string]any{
		"venues": created,
		"count":  len(created),
	}

	if err := app.jsonResponse(w, http.StatusCreated, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) updateSavedVenueHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	venueID := chi.URLParam(r, "venueID")

	sv, err := app.store.SavedVenues.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if sv.AddedBy != user.ID && !app.isGodMode(user) {
		app.forbiddenResponse(w, r)
		return
	}

	var updates map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1_048_578)).Decode(&updates); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.SavedVenues.Update(r.Context(), venueID, updates); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	updated, err := app.store.SavedVenues.GetByID(r.Context(), venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteSavedVenueHandler removes a venue from the shared list. Deleting an
// id that is already gone still succeeds; the response reports whether a row
// was actually removed.
func (app *application) deleteSavedVenueHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	venueID := chi.URLParam(r, "venueID")

	sv, err := app.store.SavedVenues.GetByID(r.Context(), venueID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		app.internalServerError(w, r, err)
		return
	}

	if sv != nil && sv.AddedBy != user.ID && !app.isGodMode(user) {
		app.forbiddenResponse(w, r)
		return
	}

	removed, err := app.store.SavedVenues.Delete(r.Context(), venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"id":      venueID,
		"removed": removed,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

type bulkDeletePayload struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

func (app *application) bulkDeleteSavedVenuesHandler(w http.ResponseWriter, r *http.Request) {
	var payload bulkDeletePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	deleted, err := app.store.SavedVenues.DeleteMany(r.Context(), payload.IDs)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"deleted": deleted,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
