package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const defaultSignedURLExpiry = time.Hour

func (app *application) signedURLHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		app.badRequestResponse(w, r, fmt.Errorf("query parameter path is required"))
		return
	}

	expiry := defaultSignedURLExpiry
	if raw := r.URL.Query().Get("expires_in"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			app.badRequestResponse(w, r, fmt.Errorf("expires_in must be a positive number of seconds"))
			return
		}
		expiry = time.Duration(secs) * time.Second
	}

	url, err := app.storage.SignedURL(r.Context(), path, expiry)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"url":        url,
		"expires_in": int(expiry.Seconds()),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) deletePhotoHandler(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if strings.TrimSpace(path) == "" {
		app.badRequestResponse(w, r, fmt.Errorf("photo path is required"))
		return
	}

	if err := app.storage.Delete(r.Context(), path); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]any{
		"path":    path,
		"deleted": true,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
