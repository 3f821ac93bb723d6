package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProfileStatsHandler(t *testing.T) {
	app, mocks := newTestApplication(t)
	mux := app.mount()

	t.Run("requires authentication", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile/stats", nil)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("summarizes activity with badges", func(t *testing.T) {
		mocks.checkIns.countFn = func(ctx context.Context, userID string) (int, error) {
			return 12, nil
		}
		mocks.saves.countFn = func(ctx context.Context, userID string) (int, error) {
			return 7, nil
		}
		defer func() {
			mocks.checkIns.countFn = nil
			mocks.saves.countFn = nil
		}()

		req := httptest.NewRequest(http.MethodGet, "/profile/stats", nil)
		req.Header.Set("Authorization", "Bearer "+testUserToken)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			CheckIns int            `json:"checkins"`
			Saves    int            `json:"saves"`
			Badges   []profileBadge `json:"badges"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.CheckIns != 12 || resp.Saves != 7 {
			t.Errorf("unexpected counts: %+v", resp)
		}
		if len(resp.Badges) != 3 {
			t.Errorf("expected 3 badges at 12 check-ins and 7 saves, got %+v", resp.Badges)
		}
	})

	t.Run("new users earn nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/profile/stats", nil)
		req.Header.Set("Authorization", "Bearer "+testUserToken)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			Badges []profileBadge `json:"badges"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.Badges) != 0 {
			t.Errorf("expected no badges for a fresh account, got %+v", resp.Badges)
		}
	})
}

func TestSignedURLHandler(t *testing.T) {
	app, _ := newTestApplication(t)
	mux := app.mount()

	t.Run("requires a path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/photos/signed-url", nil)
		req.Header.Set("Authorization", "Bearer "+testUserToken)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("returns a signed URL with the default expiry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/photos/signed-url?path=uploads/a.png", nil)
		req.Header.Set("Authorization", "Bearer "+testUserToken)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusOK, rr.Code)

		var resp struct {
			URL       string `json:"url"`
			ExpiresIn int    `json:"expires_in"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.URL == "" || resp.ExpiresIn != int(defaultSignedURLExpiry.Seconds()) {
			t.Errorf("unexpected payload: %+v", resp)
		}
	})

	t.Run("rejects a bad expiry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/photos/signed-url?path=uploads/a.png&expires_in=-1", nil)
		req.Header.Set("Authorization", "Bearer "+testUserToken)
		rr := executeRequest(mux, req)

		checkResponseCode(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeletePhotoHandler(t *testing.T) {
	app, mocks := newTestApplication(t)
	mux := app.mount()

	var deletedPath string
	mocks.storage.deleteFn = func(ctx context.Context, path string) error {
		deletedPath = path
		return nil
	}

	req := httptest.NewRequest(http.MethodDelete, "/photos/uploads/user-1/a.png", nil)
	req.Header.Set("Authorization", "Bearer "+testUserToken)
	rr := executeRequest(mux, req)

	checkResponseCode(t, http.StatusOK, rr.Code)
	if deletedPath != "uploads/user-1/a.png" {
		t.Errorf("expected the wildcard path, got %q", deletedPath)
	}
}
