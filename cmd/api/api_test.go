package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"sydneyplanner/internal/auth"
	"sydneyplanner/internal/chat"
	"sydneyplanner/internal/places"
	"sydneyplanner/internal/ratelimiter"
	"sydneyplanner/internal/store"
	"sydneyplanner/internal/venue"
)

const (
	testUserToken = "user-token"
	testGodToken  = "god-token"

	testUserID  = "7f2b1f6e-31c5-4f39-b2f1-6f51d86f8a01"
	testGodID   = "0c9f34aa-8a7e-4a56-9a1f-2d3c4b5a6978"
	testGodMail = "admin@sydneyplanner.app"
)

type stubAuthenticator struct{}

func (s *stubAuthenticator) ValidateToken(token string) (*auth.User, error) {
	switch token {
	case testUserToken:
		return &auth.User{ID: testUserID, Email: "user@example.com"}, nil
	case testGodToken:
		return &auth.User{ID: testGodID, Email: testGodMail}, nil
	default:
		return nil, auth.ErrInvalidToken
	}
}

type stubSavedVenues struct {
	listFn       func(ctx context.Context) ([]store.SavedVenue, error)
	getFn        func(ctx context.Context, id string) (*store.SavedVenue, error)
	createFn     func(ctx context.Context, sv *store.SavedVenue) error
	updateFn     func(ctx context.Context, id string, updates map[string]any) error
	deleteFn     func(ctx context.Context, id string) (bool, error)
	deleteManyFn func(ctx context.Context, ids []string) (int64, error)
}

func (s *stubSavedVenues) List(ctx context.Context) ([]store.SavedVenue, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *stubSavedVenues) GetByID(ctx context.Context, id string) (*store.SavedVenue, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (s *stubSavedVenues) Create(ctx context.Context, sv *store.SavedVenue) error {
	if s.createFn != nil {
		return s.createFn(ctx, sv)
	}
	sv.CreatedAt = time.Now()
	sv.UpdatedAt = sv.CreatedAt
	return nil
}

func (s *stubSavedVenues) Update(ctx context.Context, id string, updates map[string]any) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, updates)
	}
	return nil
}

func (s *stubSavedVenues) Delete(ctx context.Context, id string) (bool, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return false, nil
}

func (s *stubSavedVenues) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if s.deleteManyFn != nil {
		return s.deleteManyFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

type stubCheckIns struct {
	createFn func(ctx context.Context, c *store.CheckIn) error
	listFn   func(ctx context.Context, userID string) ([]store.CheckIn, error)
	updateFn func(ctx context.Context, id, userID string, updates map[string]any) error
	deleteFn func(ctx context.Context, id, userID string) error
	countFn  func(ctx context.Context, userID string) (int, error)
}

func (s *stubCheckIns) Create(ctx context.Context, c *store.CheckIn) error {
	if s.createFn != nil {
		return s.createFn(ctx, c)
	}
	c.ID = "checkin-1"
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	return nil
}

func (s *stubCheckIns) ListByUser(ctx context.Context, userID string) ([]store.CheckIn, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubCheckIns) Update(ctx context.Context, id, userID string, updates map[string]any) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, userID, updates)
	}
	return nil
}

func (s *stubCheckIns) Delete(ctx context.Context, id, userID string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id, userID)
	}
	return nil
}

func (s *stubCheckIns) CountByUser(ctx context.Context, userID string) (int, error) {
	if s.countFn != nil {
		return s.countFn(ctx, userID)
	}
	return 0, nil
}

type stubSaves struct {
	toggleFn func(ctx context.Context, save *store.Save) (string, error)
	listFn   func(ctx context.Context, userID string) ([]store.Save, error)
	countFn  func(ctx context.Context, userID string) (int, error)
}

func (s *stubSaves) Toggle(ctx context.Context, save *store.Save) (string, error) {
	if s.toggleFn != nil {
		return s.toggleFn(ctx, save)
	}
	return store.ActionSaved, nil
}

func (s *stubSaves) ListByUser(ctx context.Context, userID string) ([]store.Save, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubSaves) CountByUser(ctx context.Context, userID string) (int, error) {
	if s.countFn != nil {
		return s.countFn(ctx, userID)
	}
	return 0, nil
}

type stubChat struct {
	respondFn func(ctx context.Context, query string) chat.Reply
}

func (s *stubChat) Respond(ctx context.Context, query string) chat.Reply {
	if s.respondFn != nil {
		return s.respondFn(ctx, query)
	}
	return chat.Reply{Message: chat.FallbackMessage, Venues: []venue.Venue{}}
}

type stubPlaces struct {
	searchFn  func(ctx context.Context, params places.SearchParams) ([]venue.Venue, error)
	detailsFn func(ctx context.Context, fsqID string) (venue.Venue, error)
	photosFn  func(ctx context.Context, fsqID string) ([]string, error)
	tipsFn    func(ctx context.Context, fsqID string) ([]places.PlaceTip, error)
}

func (s *stubPlaces) Search(ctx context.Context, params places.SearchParams) ([]venue.Venue, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, params)
	}
	return nil, places.ErrNoCredential
}

func (s *stubPlaces) Details(ctx context.Context, fsqID string) (venue.Venue, error) {
	if s.detailsFn != nil {
		return s.detailsFn(ctx, fsqID)
	}
	return venue.Venue{}, places.ErrNoCredential
}

func (s *stubPlaces) Photos(ctx context.Context, fsqID string) ([]string, error) {
	if s.photosFn != nil {
		return s.photosFn(ctx, fsqID)
	}
	return nil, places.ErrNoCredential
}

func (s *stubPlaces) Tips(ctx context.Context, fsqID string) ([]places.PlaceTip, error) {
	if s.tipsFn != nil {
		return s.tipsFn(ctx, fsqID)
	}
	return nil, places.ErrNoCredential
}

type stubStorage struct {
	uploadFn    func(ctx context.Context, path, contentType string, data []byte) (string, error)
	signedURLFn func(ctx context.Context, path string, expiresIn time.Duration) (string, error)
	deleteFn    func(ctx context.Context, path string) error

	uploads int
}

func (s *stubStorage) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	s.uploads++
	if s.uploadFn != nil {
		return s.uploadFn(ctx, path, contentType, data)
	}
	return "https://storage.example.com/" + path, nil
}

func (s *stubStorage) SignedURL(ctx context.Context, path string, expiresIn time.Duration) (string, error) {
	if s.signedURLFn != nil {
		return s.signedURLFn(ctx, path, expiresIn)
	}
	return "https://storage.example.com/sign/" + path, nil
}

func (s *stubStorage) Delete(ctx context.Context, path string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, path)
	}
	return nil
}

type testMocks struct {
	savedVenues *stubSavedVenues
	checkIns    *stubCheckIns
	saves       *stubSaves
	chat        *stubChat
	places      *stubPlaces
	storage     *stubStorage
}

func newTestApplication(t *testing.T) (*application, *testMocks) {
	t.Helper()

	mocks := &testMocks{
		savedVenues: &stubSavedVenues{},
		checkIns:    &stubCheckIns{},
		saves:       &stubSaves{},
		chat:        &stubChat{},
		places:      &stubPlaces{},
		storage:     &stubStorage{},
	}

	app := &application{
		config: config{
			env:         "test",
			corsOrigins: []string{"http://*"},
			godEmail:    testGodMail,
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger: zap.NewNop().Sugar(),
		store: store.Storage{
			SavedVenues: mocks.savedVenues,
			CheckIns:    mocks.checkIns,
			Saves:       mocks.saves,
		},
		authenticator: &stubAuthenticator{},
		chat:          mocks.chat,
		places:        mocks.places,
		storage:       mocks.storage,
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(100, time.Second),
	}

	return app, mocks
}

func executeRequest(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected response code %d, got %d", expected, actual)
	}
}

var errBoom = errors.New("boom")

func readBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	data, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(data)
}
