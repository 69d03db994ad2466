package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eventojovem/api/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// writeError maps domain errors to HTTP statuses. Unexpected errors answer
// with a generic message so store internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := domain.ErrInternal.Error()

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrParticipantNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateCPF):
		status, message = http.StatusConflict, err.Error()
	}

	writeJSON(w, status, map[string]string{"error": message})
}
