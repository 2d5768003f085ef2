package utils

import (
	"encoding/json"
	"net/http"

	"github.com/fitplanhub/fitplanhub/internal/pkg/errors"
)

// MessageResponse is the error envelope: a bare message with the status code
// carrying the error kind.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response. Success payloads are the entity or list
// directly, without a wrapper.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteMessage writes a bare message response
func WriteMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, MessageResponse{Message: message})
}

// WriteError writes an error response from an AppError. Internal and database
// failures surface a generic message; everything else surfaces its own.
func WriteError(w http.ResponseWriter, err *errors.AppError) error {
	msg := err.Message
	if err.StatusCode >= http.StatusInternalServerError {
		msg = "Internal server error"
	}
	return WriteMessage(w, err.StatusCode, msg)
}

// WriteServiceError maps any error coming out of a service to the wire. Errors
// that are not AppErrors are treated as internal.
func WriteServiceError(w http.ResponseWriter, err error) error {
	if appErr, ok := errors.As(err); ok {
		return WriteError(w, appErr)
	}
	return WriteError(w, errors.Internal("unexpected error", err))
}
