package main

import (
	"fmt"
	"net/http"
	"strings"
)

type chatPayload struct {
	Query string `json:"query" validate:"required,max=500"`
}

func (app *application) chatHandler(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if strings.TrimSpace(payload.Query) == "" {
		app.badRequestResponse(w, r, fmt.Errorf("query is required"))
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reply := app.chat.Respond(r.Context(), payload.Query)

	data := map[string]any{
		"message": reply.Message,
		"venues":  reply.Venues,
		"query":   payload.Query,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
