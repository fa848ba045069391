package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bowerhall/sisters/internal/store"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

type memoRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (s *Server) handleCreateMemo(w http.ResponseWriter, r *http.Request) {
	var req memoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, "title is required")
		return
	}

	id, err := s.store.SaveMemo(req.Title, req.Content, req.Category)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"id": id})
}

func (s *Server) handleListMemos(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	memos, err := s.store.Memos(r.URL.Query().Get("category"), limit)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"memos": memos})
}

func (s *Server) handleUpdateMemo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid memo id")
		return
	}

	var patch store.MemoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, "invalid request body")
		return
	}

	if err := s.store.UpdateMemo(id, patch); err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, nil)
}

func (s *Server) handleDeleteMemo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid memo id")
		return
	}

	if err := s.store.DeleteMemo(id); err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, nil)
}

type scheduleRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body")
		return
	}
	if req.Title == "" || req.Date == "" {
		writeError(w, "title and date are required")
		return
	}

	id, err := s.store.SaveSchedule(req.Date, req.Title, req.Time, req.Description)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"id": id})
}

func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	q := store.ScheduleQuery{
		Date:  r.URL.Query().Get("date"),
		Month: r.URL.Query().Get("month"),
	}

	schedules, err := s.store.Schedules(q)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"schedules": schedules})
}

func (s *Server) handleUpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid schedule id")
		return
	}

	var patch store.SchedulePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, "invalid request body")
		return
	}

	if err := s.store.UpdateSchedule(id, patch); err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, nil)
}

func (s *Server) handleDeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, "invalid schedule id")
		return
	}

	if err := s.store.DeleteSchedule(id); err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, nil)
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.store.AllProfiles()
	if err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"profiles": profiles})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	value, ok, err := s.store.Profile(key)
	if err != nil {
		writeError(w, err.Error())
		return
	}
	if !ok {
		writeError(w, "profile not found")
		return
	}

	writeSuccess(w, map[string]any{"key": key, "value": value})
}

type profileRequest struct {
	Value string `json:"value"`
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body")
		return
	}

	if err := s.store.SaveProfile(key, req.Value); err != nil {
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"key": key})
}
