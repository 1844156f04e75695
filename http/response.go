package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/oreum-app/oreum"
	"github.com/rivo/uniseg"
)

// Input limits, counted in grapheme clusters so that composed Hangul and
// emoji count as the user sees them.
const (
	maxMessageLength = 2000
	maxJournalLength = 5000
	maxMoodLength    = 100
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// writeError maps err to a status code. Unexpected errors are logged and
// reported without detail.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, oreum.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, oreum.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// decode reads a JSON body of at most maxRequestBodySize into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v: %w", err, oreum.ErrValidation)
	}
	return nil
}

// checkLength rejects text longer than limit grapheme clusters.
func checkLength(field, text string, limit int) error {
	if n := uniseg.GraphemeClusterCount(text); n > limit {
		return fmt.Errorf("%s is too long (%d > %d characters): %w", field, n, limit, oreum.ErrValidation)
	}
	return nil
}
