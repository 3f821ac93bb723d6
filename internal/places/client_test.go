package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchNormalizesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("authorization header = %q", got)
		}
		if got := r.URL.Query().Get("ll"); got != SydneyLL {
			t.Errorf("ll = %q, want default Sydney origin", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"fsq_id":"abc123","name":"Test Cafe","categories":[{"id":1,"name":"Coffee Shop"}],"rating":8.0,"distance":1200},
			{"fsq_id":"def456","name":"Bare Place"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	venues, err := c.Search(context.Background(), SearchParams{Query: "coffee"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(venues) != 2 {
		t.Fatalf("expected 2 venues, got %d", len(venues))
	}
	if venues[0].ID != "fsq_abc123" || venues[0].Rating != "4.0" || venues[0].Distance != "1.2 km" {
		t.Errorf("first venue = %+v", venues[0])
	}
	if venues[1].Rating != "4.0" || venues[1].Distance != "Nearby" {
		t.Errorf("bare venue defaults = %+v", venues[1])
	}
}

func TestSearchUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	_, err := c.Search(context.Background(), SearchParams{})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	var ue *UpstreamError
	if !errors.As(err, &ue) || ue.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected UpstreamError with status 500, got %v", err)
	}
}

func TestMissingCredential(t *testing.T) {
	c := NewClient("")
	if _, err := c.Search(context.Background(), SearchParams{}); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("search: expected ErrNoCredential, got %v", err)
	}
	if _, err := c.Details(context.Background(), "abc"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("details: expected ErrNoCredential, got %v", err)
	}
	if _, err := c.Photos(context.Background(), "abc"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("photos: expected ErrNoCredential, got %v", err)
	}
	if _, err := c.Tips(context.Background(), "abc"); !errors.Is(err, ErrNoCredential) {
		t.Fatalf("tips: expected ErrNoCredential, got %v", err)
	}
}

func TestDetailsNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fsq_id":"abc123","name":"Test Cafe","tel":"+61 2 9000 0000",
			"hours":{"display":"Mon-Fri 7:00-15:00","open_now":true},
			"tips":[{"text":"great flat white"}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	v, err := c.Details(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ID != "fsq_abc123" || v.Phone != "+61 2 9000 0000" {
		t.Errorf("venue = %+v", v)
	}
	if v.Hours == nil || !v.Hours.OpenNow {
		t.Errorf("hours = %+v", v.Hours)
	}
	if len(v.Tips) != 1 || v.Tips[0] != "great flat white" {
		t.Errorf("tips = %v", v.Tips)
	}
}

func TestPhotosUsesMediumVariant(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","prefix":"https://img.example/","suffix":"/a.jpg"}]`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))
	photos, err := c.Photos(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(photos) != 1 || photos[0] != "https://img.example/500x500/a.jpg" {
		t.Fatalf("photos = %v", photos)
	}
}
