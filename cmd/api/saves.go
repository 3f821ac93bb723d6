package main

import (
	"net/http"

	"sydneyplanner/internal/store"
)

type toggleSavePayload struct {
	VenueID  string `json:"venue_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=200"`
	Category string `json:"category" validate:"max=100"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// toggleSaveHandler flips the save state for (user, venue) and reports which
// way it flipped.
func (app *application) toggleSaveHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload toggleSavePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	save := &store.Save{
		UserID:   user.ID,
		VenueID:  payload.VenueID,
		Name:     payload.Name,
		Category: payload.Category,
		Image:    payload.Image,
	}

	action, err := app.store.Saves.Toggle(r.Context(), save)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"action":   action,
		"venue_id": payload.VenueID,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listSavesHandler returns the caller's bookmarks, or an empty list for
// anonymous callers.
func (app *application) listSavesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	saves := []store.Save{}
	if user != nil {
		var err error
		saves, err = app.store.Saves.ListByUser(r.Context(), user.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
		if saves == nil {
			saves = []store.Save{}
		}
	}

	data := map[string]any{
		"saves": saves,
		"count": len(saves),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
