// Log query endpoints over the in-memory log buffer.

package admin

import (
	"net/http"

	"github.com/trontrack/trackd/internal/id"
	"github.com/trontrack/trackd/internal/store"
)

// LogListResponse wraps the filtered log entries.
type LogListResponse struct {
	Logs  []store.LogEntry `json:"logs"`
	Total int              `json:"total"`
}

// handleListLogs handles GET {prefix}/logs. Query params level and module
// are exact-match filters with AND semantics.
func (a *API) handleListLogs(w http.ResponseWriter, r *http.Request) {
	logs := a.store.Logs(
		r.URL.Query().Get("level"),
		r.URL.Query().Get("module"),
	)
	writeJSON(w, http.StatusOK, LogListResponse{
		Logs:  logs,
		Total: len(logs),
	})
}

// handleLogStats handles GET {prefix}/logs/stats.
func (a *API) handleLogStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.LogStats())
}

// handleExportLogs handles GET {prefix}/logs/export. A stub: the URL is
// returned but no file is generated.
func (a *API) handleExportLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"download_url": a.prefix + "/logs/download/" + id.ExportFile(a.store.Now()),
	})
}

// handleClearLogs handles POST {prefix}/logs/clear. Always succeeds.
func (a *API) handleClearLogs(w http.ResponseWriter, r *http.Request) {
	a.store.ClearLogs()
	writeJSON(w, http.StatusOK, map[string]any{"message": "Logs cleared successfully"})
}
