package web

import (
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/bowerhall/sisters/internal/logger"
)

const defaultHistoryLimit = 50

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		logger.Error("stats", "error", err)
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"stats": stats})
}

func (s *Server) handleConversations(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	turns, err := s.store.History(sessionID, limit)
	if err != nil {
		logger.Error("conversations", "session_id", sessionID, "error", err)
		writeError(w, err.Error())
		return
	}

	writeSuccess(w, map[string]any{"conversations": turns})
}

type systemResponse struct {
	Hostname  string  `json:"hostname"`
	OS        string  `json:"os"`
	Arch      string  `json:"arch"`
	CPUUsage  float64 `json:"cpu_usage_percent"`
	MemTotal  uint64  `json:"mem_total_bytes"`
	MemUsed   uint64  `json:"mem_used_bytes"`
	MemUsage  float64 `json:"mem_usage_percent"`
	DiskPath  string  `json:"disk_path"`
	DiskUsed  uint64  `json:"disk_used_bytes"`
	DiskFree  uint64  `json:"disk_free_bytes"`
	Goroutine int     `json:"goroutines"`
}

func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	hostname, _ := os.Hostname()

	cpuPercent, _ := cpu.Percent(time.Second, false)
	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	resp := systemResponse{
		Hostname:  hostname,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUUsage:  cpuUsage,
		DiskPath:  "/",
		Goroutine: runtime.NumGoroutine(),
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		resp.MemTotal = memInfo.Total
		resp.MemUsed = memInfo.Used
		resp.MemUsage = memInfo.UsedPercent
	}
	if diskInfo, err := disk.Usage("/"); err == nil {
		resp.DiskUsed = diskInfo.Used
		resp.DiskFree = diskInfo.Free
	}

	writeJSON(w, resp)
}
