package http

import (
	"net/http"
	"time"

	"github.com/oreum-app/oreum/focus"
)

type focusResponse struct {
	focus.State
	Presets []int `json:"presets"`
}

type durationRequest struct {
	Minutes int `json:"minutes"`
}

func writeFocus(w http.ResponseWriter, st focus.State) {
	JSON(w, http.StatusOK, focusResponse{State: st, Presets: focus.Presets})
}

func (s *Server) handleFocusState(w http.ResponseWriter, r *http.Request) {
	writeFocus(w, s.timer.State())
}

func (s *Server) handleFocusToggle(w http.ResponseWriter, r *http.Request) {
	writeFocus(w, s.timer.Toggle())
}

func (s *Server) handleFocusReset(w http.ResponseWriter, r *http.Request) {
	writeFocus(w, s.timer.Reset())
}

func (s *Server) handleFocusDuration(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	st, err := s.timer.SetDuration(req.Minutes)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeFocus(w, st)
}

// focusCompleted credits finished focus periods to the profile.
func (s *Server) focusCompleted(mode focus.Mode, length time.Duration) {
	if mode != focus.ModeFocus {
		return
	}
	s.mu.Lock()
	s.profile.AddFocusMinutes(int(length / time.Minute))
	s.mu.Unlock()
	s.logger.Info("focus period completed", "minutes", int(length/time.Minute))
}
