package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pickmate/fulfillment-api/internal/repository"
	"github.com/pickmate/fulfillment-api/internal/storage"
)

type envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	StatusCode int         `json:"statusCode,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, envelope{Success: false, Message: message, StatusCode: status})
}

// respondFailure is the single place business errors become HTTP
// statuses. A duplicate completion is deliberately distinct from a
// generic validation failure so a client can treat it as already-done.
func (s *Server) respondFailure(w http.ResponseWriter, err error) {
	var validationErr *storage.ValidationError

	switch {
	case errors.As(err, &validationErr):
		respondError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, repository.ErrObjectNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, repository.ErrDuplicateOrderID):
		respondError(w, http.StatusConflict, "Order already completed")
	case errors.Is(err, repository.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		s.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
