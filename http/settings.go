package http

import (
	"net/http"
	"strings"
)

// Messages shown by the settings dialog.
const (
	msgKeyRequired = "API Key를 입력해주세요."
	msgKeyInvalid  = "연결 실패: 유효하지 않은 API Key이거나 네트워크 문제입니다."
)

type keyStatus struct {
	Configured bool `json:"configured"`
}

type keyRequest struct {
	APIKey string `json:"apiKey"`
}

func (s *Server) handleKeyStatus(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, keyStatus{Configured: s.gateway.Configured()})
}

// handleKeySave validates the candidate key against the service and only
// then persists it and rebinds the gateway.
func (s *Server) handleKeySave(w http.ResponseWriter, r *http.Request) {
	var req keyRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	key := strings.TrimSpace(req.APIKey)
	if key == "" {
		Error(w, http.StatusBadRequest, msgKeyRequired)
		return
	}
	if !s.gateway.CheckConnection(r.Context(), key) {
		Error(w, http.StatusBadRequest, msgKeyInvalid)
		return
	}
	s.secrets.Save(key)
	s.gateway.Initialize(key)
	s.logger.Info("API key configured")
	JSON(w, http.StatusOK, keyStatus{Configured: true})
}

func (s *Server) handleKeyClear(w http.ResponseWriter, r *http.Request) {
	s.secrets.Clear()
	s.gateway.Initialize("")
	s.logger.Info("API key cleared")
	w.WriteHeader(http.StatusNoContent)
}
