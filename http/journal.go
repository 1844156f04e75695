package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/oreum-app/oreum"
)

// defaultJournalLimit is the number of entries listed when no limit is given.
const defaultJournalLimit = 50

type journalRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleJournalList(w http.ResponseWriter, r *http.Request) {
	limit := defaultJournalLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, fmt.Errorf("invalid limit %q: %w", v, oreum.ErrValidation))
			return
		}
		limit = n
	}
	entries, err := s.journal.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []oreum.JournalEntry{}
	}
	JSON(w, http.StatusOK, entries)
}

// handleJournalCreate asks the mentor for feedback on the entry and stores
// both.
func (s *Server) handleJournalCreate(w http.ResponseWriter, r *http.Request) {
	var req journalRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		s.writeError(w, r, fmt.Errorf("journal entry is empty: %w", oreum.ErrValidation))
		return
	}
	if err := checkLength("journal entry", text, maxJournalLength); err != nil {
		s.writeError(w, r, err)
		return
	}
	entry, err := s.journal.Create(r.Context(), oreum.JournalEntry{
		Text:      text,
		Feedback:  s.gateway.AnalyzeSentiment(r.Context(), text),
		CreatedAt: s.now(),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, entry)
}
