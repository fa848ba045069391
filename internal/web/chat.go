package web

import (
	"encoding/json"
	"net/http"

	"github.com/bowerhall/sisters/internal/agent"
	"github.com/bowerhall/sisters/internal/logger"
)

type chatRequest struct {
	Message string               `json:"message"`
	History []agent.HistoryEntry `json:"history"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// handleChat always answers 200 with a response string; a malformed
// body or a failed pipeline yields a fallback message instead of an
// error status.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("chat: bad request body", "error", err)
		writeJSON(w, chatResponse{Response: s.persona.Fallback()})
		return
	}

	sessionID := s.sessions.SessionID(r)
	reply := s.agent.Process(r.Context(), sessionID, req.Message, req.History)
	writeJSON(w, chatResponse{Response: reply})
}
