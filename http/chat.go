package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/oreum-app/oreum"
)

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, s.gateway.History())
}

// handleChatSend answers with the model turn of the new exchange.
func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, r, fmt.Errorf("message is empty: %w", oreum.ErrValidation))
		return
	}
	if err := checkLength("message", req.Message, maxMessageLength); err != nil {
		s.writeError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, s.gateway.Reply(r.Context(), req.Message))
}
