package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"path"

	"github.com/google/uuid"
)

const (
	maxUploadBytes = 5 << 20 // 5mb
	// Base64 inflates by 4/3; anything whose encoded form would pass 2mb is
	// too big to hand back inline.
	maxInlineEncodedBytes = 2 << 20
)

// allowedImageTypes is the upload allow-list, keyed by sniffed MIME type.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// uploadHandler stores a venue photo and returns its public URL. When the
// storage backend is unreachable the image is returned as an inline data URL
// instead, so the client still gets something renderable.
func (app *application) uploadHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+4096)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		app.payloadTooLargeResponse(w, r)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("file field is required"))
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		app.payloadTooLargeResponse(w, r)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if len(data) > maxUploadBytes {
		app.payloadTooLargeResponse(w, r)
		return
	}

	contentType := http.DetectContentType(data)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		app.unsupportedMediaTypeResponse(w, r, contentType)
		return
	}

	objectPath := path.Join("uploads", user.ID, uuid.NewString()+ext)

	url, err := app.storage.Upload(r.Context(), objectPath, contentType, data)
	if err != nil {
		app.logger.Warnw("storage upload failed, falling back to inline", "error", err.Error())

		encodedLen := base64.StdEncoding.EncodedLen(len(data))
		if encodedLen > maxInlineEncodedBytes {
			app.badGatewayResponse(w, r, err)
			return
		}

		inline := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
		resp := map[string]string{
			"url":     inline,
			"storage": "base64",
		}
		if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	resp := map[string]string{
		"url":     url,
		"storage": "supabase",
		"path":    objectPath,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
