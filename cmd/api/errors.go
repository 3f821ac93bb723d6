package main

import (
	"errors"
	"net/http"

	"sydneyplanner/internal/places"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("forbidden", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusForbidden, "forbidden")
}

func (app *application) unsupportedMediaTypeResponse(w http.ResponseWriter, r *http.Request, contentType string) {
	app.logger.Warnw("unsupported media type", "method", r.Method, "path", r.URL.Path, "content_type", contentType)

	writeJSONError(w, http.StatusUnsupportedMediaType, "unsupported file type: "+contentType)
}

func (app *application) payloadTooLargeResponse(w http.ResponseWriter, r *http.Request) {
	app.logger.Warnw("payload too large", "method", r.Method, "path", r.URL.Path)

	writeJSONError(w, http.StatusRequestEntityTooLarge, "file exceeds the maximum allowed size")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

func (app *application) badGatewayResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("upstream error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadGateway, "an upstream service failed")
}

// upstreamErrorResponse maps provider gateway failures onto the proxy
// surface: missing credentials read as 503, everything else as 502.
func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, places.ErrNoCredential) {
		app.logger.Warnw("provider credential unset", "method", r.Method, "path", r.URL.Path)
		writeJSONError(w, http.StatusServiceUnavailable, "venue provider is not configured")
		return
	}

	app.logger.Errorw("upstream error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusBadGateway, "venue provider request failed")
}
