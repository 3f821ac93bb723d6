package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sydneyplanner/internal/catalog"
	"sydneyplanner/internal/venue"
)

func TestListCatalogHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	req := httptest.NewRequest(http.MethodGet, "/venues", nil)
	rr := executeRequest(mux, req)

	checkResponseCode(t, http.StatusOK, rr.Code)

	var resp struct {
		Venues []venue.Venue `json:"venues"`
		Total  int           `json:"total"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != catalog.Size() {
		t.Errorf("expected %d venues, got %d", catalog.Size(), resp.Total)
	}
	for _, v := range resp.Venues {
		if v.Source != venue.SourceCatalog {
			t.Errorf("venue %s: expected source %q, got %q", v.ID, venue.SourceCatalog, v.Source)
		}
	}
}

func TestGetCatalogVenueHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	t.Run("known id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/venues/syd_2", nil)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var v venue.Venue
		if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if v.Name != "Bondi Beach" {
			t.Errorf("expected Bondi Beach, got %q", v.Name)
		}
		if v.Style != venue.StyleFor(v.Category) {
			t.Errorf("expected the category style on the wire, got %+v", v.Style)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/venues/syd_999", nil)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusNotFound, rr.Code)
	})
}

func TestSearchCatalogHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	t.Run("keyword query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search?q=brunch", nil)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			Query  string        `json:"query"`
			Venues []venue.Venue `json:"venues"`
			Total  int           `json:"total"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Query != "brunch" {
			t.Errorf("expected query echoed back, got %q", resp.Query)
		}
		if resp.Total == 0 || resp.Total > catalog.MaxResults {
			t.Errorf("expected between 1 and %d venues, got %d", catalog.MaxResults, resp.Total)
		}
		for _, v := range resp.Venues {
			if v.Category != "Cafe" {
				t.Errorf("brunch should match cafes, got %s (%s)", v.Name, v.Category)
			}
		}
	})

	t.Run("missing q", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/search", nil)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})
}
