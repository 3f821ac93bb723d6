package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sydneyplanner/internal/places"
)

func (app *application) placesSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := q.Get("query")
	if query == "" {
		app.badRequestResponse(w, r, fmt.Errorf("query parameter query is required"))
		return
	}

	params := places.SearchParams{
		Query: query,
		LL:    q.Get("ll"),
	}
	if raw := q.Get("radius"); raw != "" {
		radius, err := strconv.Atoi(raw)
		if err != nil || radius <= 0 {
			app.badRequestResponse(w, r, fmt.Errorf("radius must be a positive number of meters"))
			return
		}
		params.Radius = radius
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			app.badRequestResponse(w, r, fmt.Errorf("limit must be a positive number"))
			return
		}
		params.Limit = limit
	}

	venues, err := app.places.Search(r.Context(), params)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	data := map[string]any{
		"venues": venues,
		"count":  len(venues),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) placesDetailsHandler(w http.ResponseWriter, r *http.Request) {
	fsqID := chi.URLParam(r, "fsqID")

	v, err := app.places.Details(r.Context(), fsqID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, v); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) placesPhotosHandler(w http.ResponseWriter, r *http.Request) {
	fsqID := chi.URLParam(r, "fsqID")

	photos, err := app.places.Photos(r.Context(), fsqID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}
	if photos == nil {
		photos = []string{}
	}

	data := map[string]any{
		"photos": photos,
		"count":  len(photos),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) placesTipsHandler(w http.ResponseWriter, r *http.Request) {
	fsqID := chi.URLParam(r, "fsqID")

	tips, err := app.places.Tips(r.Context(), fsqID)
	if err != nil {
		app.upstreamErrorResponse(w, r, err)
		return
	}
	if tips == nil {
		tips = []places.PlaceTip{}
	}

	data := map[string]any{
		"tips":  tips,
		"count": len(tips),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
