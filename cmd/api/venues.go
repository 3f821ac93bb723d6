package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sydneyplanner/internal/catalog"
)

func (app *application) listCatalogHandler(w http.ResponseWriter, r *http.Request) {
	venues := catalog.All()

	data := map[string]any{
		"venues": venues,
		"total":  len(venues),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getCatalogVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "venueID")

	v, ok := catalog.ByID(venueID)
	if !ok {
		app.notFoundResponse(w, r, fmt.Errorf("venue %s not found", venueID))
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, v); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) searchCatalogHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		app.badRequestResponse(w, r, fmt.Errorf("query parameter q is required"))
		return
	}

	venues := catalog.Filter(query)

	data := map[string]any{
		"query":  query,
		"venues": venues,
		"total":  len(venues),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
