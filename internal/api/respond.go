package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"courier/infrastructure"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("encoding response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		msg = "internal server error"
	}
	respondJSON(w, status, map[string]string{"error": msg})
}

// statusFor is the single place the core's error kinds become HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, infrastructure.ErrUnknownUser),
		errors.Is(err, infrastructure.ErrUnknownGroup):
		return http.StatusNotFound
	case errors.Is(err, infrastructure.ErrDuplicateUsername),
		errors.Is(err, infrastructure.ErrDuplicateGroupName),
		errors.Is(err, infrastructure.ErrAlreadyMember):
		return http.StatusConflict
	case errors.Is(err, infrastructure.ErrEmptyContent),
		errors.Is(err, infrastructure.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, infrastructure.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, infrastructure.ErrNotMember):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
