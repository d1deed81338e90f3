package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/forms"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/service"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain failures onto HTTP statuses. Unrecognized errors
// are treated as failed store calls.
func writeError(w http.ResponseWriter, err error) {
	var ferr *forms.FieldError
	if errors.As(err, &ferr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ferr.Message, Field: ferr.Field})
		return
	}

	var aerr *auth.Error
	if errors.As(err, &aerr) {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: aerr.Code})
		return
	}

	if errors.Is(err, service.ErrForbidden) {
		writeJSON(w, http.StatusForbidden, errorBody{Error: "forbidden"})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
		return
	}

	var terr *service.InvalidTransitionError
	if errors.As(err, &terr) {
		writeJSON(w, http.StatusConflict, errorBody{Error: terr.Error()})
		return
	}
	if errors.Is(err, service.ErrUnknownStatus) {
		writeJSON(w, http.StatusConflict, errorBody{Error: service.ErrUnknownStatus.Error()})
		return
	}

	// Store and provider failures pass through with their message intact;
	// the adapters already wrap them with path context.
	logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
}

func decodeFields(r *http.Request) (map[string]string, error) {
	fields := make(map[string]string)
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		return nil, &forms.FieldError{Field: "body", Message: "Invalid request body"}
	}
	return fields, nil
}
