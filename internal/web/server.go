// Package web exposes the HTTP surface: the chat endpoint, the embedded
// chat UI, and the administrative record-keeping API.
package web

import (
	"context"
	"embed"
	"net/http"
	"time"

	"github.com/bowerhall/sisters/internal/agent"
	"github.com/bowerhall/sisters/internal/logger"
	"github.com/bowerhall/sisters/internal/session"
	"github.com/bowerhall/sisters/internal/store"
)

//go:embed static
var staticFS embed.FS

// ChatAgent handles one chat turn; it never returns an error, only a
// response string (possibly a fallback message).
type ChatAgent interface {
	Process(ctx context.Context, sessionID, message string, history []agent.HistoryEntry) string
}

type Server struct {
	agent    ChatAgent
	store    *store.Store
	sessions session.Provider
	persona  agent.Persona
}

func New(a ChatAgent, st *store.Store, sessions session.Provider, persona agent.Persona) *Server {
	return &Server{
		agent:    a,
		store:    st,
		sessions: sessions,
		persona:  persona,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	mux.HandleFunc("POST /chat", s.handleChat)

	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/conversations/{session_id}", s.handleConversations)
	mux.HandleFunc("GET /api/system", s.handleSystem)

	mux.HandleFunc("POST /api/memos", s.handleCreateMemo)
	mux.HandleFunc("GET /api/memos", s.handleListMemos)
	mux.HandleFunc("PATCH /api/memos/{id}", s.handleUpdateMemo)
	mux.HandleFunc("DELETE /api/memos/{id}", s.handleDeleteMemo)

	mux.HandleFunc("POST /api/schedules", s.handleCreateSchedule)
	mux.HandleFunc("GET /api/schedules", s.handleListSchedules)
	mux.HandleFunc("PATCH /api/schedules/{id}", s.handleUpdateSchedule)
	mux.HandleFunc("DELETE /api/schedules/{id}", s.handleDeleteSchedule)

	mux.HandleFunc("GET /api/profiles", s.handleListProfiles)
	mux.HandleFunc("GET /api/profiles/{key}", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profiles/{key}", s.handlePutProfile)

	mux.HandleFunc("GET /health", s.handleHealth)

	return withLogging(mux)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "chat UI not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "OK",
		"message": "Sisters Network is operational",
	})
}
