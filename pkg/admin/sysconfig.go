// System configuration endpoints: blockchain scan settings, node list,
// database connection parameters. None of this is persisted — GET always
// returns the fixed records and PUT/POST only echo what they built.

package admin

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/trontrack/trackd/internal/id"
)

// BlockchainConfig is the scan configuration record.
type BlockchainConfig struct {
	SyncMode   string     `json:"sync_mode"`
	StartBlock int64      `json:"start_block"`
	BatchSize  int        `json:"batch_size"`
	StartTime  string     `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
}

// Node is one upstream RPC node.
type Node struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	Priority  int     `json:"priority"`
	Status    string  `json:"status"`
	Latency   *int    `json:"latency"`
	LastCheck *string `json:"last_check"`
}

// NodeParams carries the client-supplied fields of a node create request.
type NodeParams struct {
	Name     *string `json:"name"`
	URL      *string `json:"url"`
	Priority *int    `json:"priority"`
}

// DatabaseParams are the connection parameters of one backing store.
type DatabaseParams struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	Database       any    `json:"database"`
	Username       string `json:"username,omitempty"`
	MaxConnections int    `json:"max_connections"`
}

// DatabaseConfig groups the primary store and the cache store.
type DatabaseConfig struct {
	PostgreSQL DatabaseParams `json:"postgresql"`
	Redis      DatabaseParams `json:"redis"`
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

// fixedBlockchainConfig is what GET returns, regardless of prior PUTs.
func fixedBlockchainConfig() BlockchainConfig {
	return BlockchainConfig{
		SyncMode:   "full",
		StartBlock: 62800000,
		BatchSize:  100,
		StartTime:  "2024-01-01T00:00:00Z",
		EndTime:    nil,
	}
}

func fixedNodes() []Node {
	return []Node{
		{
			ID:        "node_1",
			Name:      "Primary node",
			URL:       "https://api.trongrid.io",
			Priority:  1,
			Status:    "active",
			Latency:   intPtr(45),
			LastCheck: strPtr("2024-07-29T19:45:00Z"),
		},
		{
			ID:        "node_2",
			Name:      "Backup node 1",
			URL:       "https://api.getblock.io",
			Priority:  2,
			Status:    "standby",
			Latency:   intPtr(67),
			LastCheck: strPtr("2024-07-29T19:44:00Z"),
		},
	}
}

func fixedDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		PostgreSQL: DatabaseParams{
			Host:           "localhost",
			Port:           5432,
			Database:       "tron_tracker",
			Username:       "postgres",
			MaxConnections: 20,
		},
		Redis: DatabaseParams{
			Host:           "localhost",
			Port:           6379,
			Database:       0,
			MaxConnections: 10,
		},
	}
}

// handleGetBlockchainConfig handles GET {prefix}/config/blockchain.
func (a *API) handleGetBlockchainConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fixedBlockchainConfig())
}

// handleUpdateBlockchainConfig handles PUT {prefix}/config/blockchain.
// The submitted payload is echoed back as updated; nothing is stored, and
// the next GET still returns the fixed record.
func (a *API) handleUpdateBlockchainConfig(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	_ = json.NewDecoder(r.Body).Decode(&payload)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Blockchain configuration updated",
		"config":  payload,
	})
}

// handleListNodes handles GET {prefix}/config/nodes.
func (a *API) handleListNodes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"nodes": fixedNodes()})
}

// handleCreateNode handles POST {prefix}/config/nodes. The node is built
// and returned but never added to the list a GET sees.
func (a *API) handleCreateNode(w http.ResponseWriter, r *http.Request) {
	var params NodeParams
	decodeBody(r, &params)

	node := Node{
		ID:       id.Node(),
		Name:     "New node",
		Priority: 3,
		Status:   "inactive",
	}
	if params.Name != nil {
		node.Name = *params.Name
	}
	if params.URL != nil {
		node.URL = *params.URL
	}
	if params.Priority != nil {
		node.Priority = *params.Priority
	}
	writeJSON(w, http.StatusCreated, node)
}

// handleGetDatabaseConfig handles GET {prefix}/config/database.
func (a *API) handleGetDatabaseConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fixedDatabaseConfig())
}

// handleTestDatabase handles POST {prefix}/config/database/test. A stub:
// no connection is attempted.
func (a *API) handleTestDatabase(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "connected",
		"latency": 12,
	})
}
