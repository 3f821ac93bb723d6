package main

import (
	"fmt"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const maxAvatarBytes = 2 << 20 // 2mb

// uploadAvatarHandler stores the user's profile picture in Cloudinary,
// overwriting any previous avatar for the same user.
func (app *application) uploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if app.cld == nil {
		app.logger.Warnw("avatar upload requested but cloudinary is not configured")
		writeJSONError(w, http.StatusServiceUnavailable, "avatar storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes+4096)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		app.payloadTooLargeResponse(w, r)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("file field is required"))
		return
	}
	defer file.Close()

	if header.Size > maxAvatarBytes {
		app.payloadTooLargeResponse(w, r)
		return
	}

	resp, err := app.cld.Upload.Upload(r.Context(), file, uploader.UploadParams{
		Folder:    "avatars",
		PublicID:  user.ID,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	data := map[string]string{
		"url": resp.SecureURL,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

type profileBadge struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// profileStatsHandler summarizes a user's activity and the badges earned
// from it.
func (app *application) profileStatsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	checkIns, err := app.store.CheckIns.CountByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	saves, err := app.store.Saves.CountByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	badges := []profileBadge{}
	if checkIns >= 1 {
		badges = append(badges, profileBadge{ID: "first_checkin", Label: "Explorer"})
	}
	if checkIns >= 10 {
		badges = append(badges, profileBadge{ID: "ten_checkins", Label: "Local Legend"})
	}
	if saves >= 5 {
		badges = append(badges, profileBadge{ID: "five_saves", Label: "Curator"})
	}

	data := map[string]any{
		"checkins": checkIns,
		"saves":    saves,
		"badges":   badges,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
