package http

import "net/http"

// handleProfile reads the timer first so that a focus period which ran out
// since the last request is credited before the profile is reported.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	s.timer.State()
	s.mu.Lock()
	p := s.profile
	s.mu.Unlock()
	JSON(w, http.StatusOK, p)
}
