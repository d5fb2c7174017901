package admin

import (
	"encoding/json"
	"net/http"
	"time"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// decodeBody decodes a JSON request body into dst. Absent or malformed
// bodies are tolerated: every write endpoint defaults missing fields, so a
// failed decode just means "no fields supplied".
func decodeBody(r *http.Request, dst any) {
	_ = json.NewDecoder(r.Body).Decode(dst)
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// StatusResponse is the detailed server status body.
type StatusResponse struct {
	Status  string         `json:"status"`
	Version string         `json:"version"`
	Uptime  int64          `json:"uptime"`
	Port    int            `json:"port"`
	Counts  map[string]int `json:"counts"`
}

// handleHealth handles GET {prefix}/health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: a.store.Now().UTC().Format(time.RFC3339),
		Version:   a.version,
	})
}

// handleStatus handles GET /status.
func (a *API) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:  "running",
		Version: a.version,
		Uptime:  a.Uptime(),
		Port:    a.port,
		Counts:  a.store.Counts(),
	})
}
