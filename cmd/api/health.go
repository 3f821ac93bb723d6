package main

import "net/http"

const version = "1.1.0"

func (app *application) rootHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]string{
		"message": "Sydney Planner API is running",
		"env":     app.config.env,
		"version": version,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
