// WebSocket connection inspection endpoints. Connections are seeded
// records: the real websocket server lives elsewhere, this API only
// reflects its tracked state.

package admin

import (
	"errors"
	"net/http"

	"github.com/trontrack/trackd/internal/store"
)

// ConnectionListResponse wraps the connection collection.
type ConnectionListResponse struct {
	Connections []store.Connection `json:"connections"`
	Total       int                `json:"total"`
}

// handleListConnections handles GET {prefix}/websockets/connections.
func (a *API) handleListConnections(w http.ResponseWriter, r *http.Request) {
	conns := a.store.Connections()
	writeJSON(w, http.StatusOK, ConnectionListResponse{
		Connections: conns,
		Total:       len(conns),
	})
}

// handleDisconnect handles POST {prefix}/websockets/connections/{id}/disconnect.
// Idempotent: disconnecting an already-disconnected id succeeds again.
func (a *API) handleDisconnect(w http.ResponseWriter, r *http.Request) {
	err := a.store.Disconnect(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrMsgConnectionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Connection disconnected"})
}

// handleConnectionStats handles GET {prefix}/websockets/stats.
func (a *API) handleConnectionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.ConnectionStats())
}
