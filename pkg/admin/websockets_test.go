package admin

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trontrack/trackd/internal/store"
)

func TestListConnections(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/websockets/connections", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ConnectionListResponse
	decode(t, resp, &body)
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Connections, 2)
	assert.Equal(t, "conn_1", body.Connections[0].ID)
	assert.Equal(t, "192.168.1.100", body.Connections[0].ClientIP)
	assert.Equal(t, store.StatusConnected, body.Connections[0].Status)
}

func TestDisconnect(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/websockets/connections/conn_1/disconnect", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decode(t, resp, &body)
	assert.Equal(t, "Connection disconnected", body["message"])

	list := do(t, srv, http.MethodGet, "/api/websockets/connections", nil)
	var conns ConnectionListResponse
	decode(t, list, &conns)
	assert.Equal(t, store.StatusDisconnected, conns.Connections[0].Status)
	assert.Equal(t, store.StatusConnected, conns.Connections[1].Status)
}

func TestDisconnectTwiceSucceeds(t *testing.T) {
	srv, _ := newTestServer(t)

	first := do(t, srv, http.MethodPost, "/api/websockets/connections/conn_2/disconnect", nil)
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := do(t, srv, http.MethodPost, "/api/websockets/connections/conn_2/disconnect", nil)
	assert.Equal(t, http.StatusOK, second.StatusCode)
}

func TestDisconnectNotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv, http.MethodPost, "/api/websockets/connections/conn_999/disconnect", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "Connection not found", body.Error)
}

func TestConnectionStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/websockets/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var st store.ConnectionStats
	decode(t, resp, &st)
	assert.Equal(t, 2, st.TotalConnections)
	assert.Equal(t, 2, st.ActiveConnections)
	assert.Equal(t, 5036, st.TotalMessages)
	assert.Equal(t, 21.5, st.AvgLatency)

	// Disconnecting shrinks the active count but not the total.
	do(t, srv, http.MethodPost, "/api/websockets/connections/conn_1/disconnect", nil)

	resp = do(t, srv, http.MethodGet, "/api/websockets/stats", nil)
	decode(t, resp, &st)
	assert.Equal(t, 2, st.TotalConnections)
	assert.Equal(t, 1, st.ActiveConnections)
}
