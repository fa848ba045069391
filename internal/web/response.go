package web

import (
	"encoding/json"
	"net/http"

	"github.com/bowerhall/sisters/internal/logger"
)

// The admin API reports failures in the body rather than the status
// line; clients check the "status" field, not the HTTP code.

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, extra map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, body)
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]any{"status": "error", "message": msg})
}
