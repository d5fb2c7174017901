// Route registration for the admin API.

package admin

import (
	"net/http"

	"github.com/trontrack/trackd/pkg/metrics"
)

// registerRoutes sets up all API routes. Resource routes mount under the
// configured prefix; status and metrics are served at the root.
func (a *API) registerRoutes(mux *http.ServeMux) {
	p := a.prefix

	// Health, status, metrics
	mux.HandleFunc("GET "+p+"/health", a.handleHealth)
	mux.HandleFunc("GET /status", a.handleStatus)
	mux.Handle("GET /metrics", metrics.Handler())

	// Dashboard
	mux.HandleFunc("GET "+p+"/dashboard/stats", a.handleDashboardStats)
	mux.HandleFunc("GET "+p+"/dashboard/chart-data", a.handleChartData)

	// Webhooks
	mux.HandleFunc("GET "+p+"/webhooks", a.handleListWebhooks)
	mux.HandleFunc("POST "+p+"/webhooks", a.handleCreateWebhook)
	mux.HandleFunc("GET "+p+"/webhooks/stats", a.handleWebhookStats)
	mux.HandleFunc("GET "+p+"/webhooks/events", a.handleWebhookEvents)
	mux.HandleFunc("GET "+p+"/webhooks/{id}", a.handleGetWebhook)
	mux.HandleFunc("PUT "+p+"/webhooks/{id}", a.handleUpdateWebhook)
	mux.HandleFunc("DELETE "+p+"/webhooks/{id}", a.handleDeleteWebhook)
	mux.HandleFunc("POST "+p+"/webhooks/{id}/test", a.handleTestWebhook)

	// WebSocket connections
	mux.HandleFunc("GET "+p+"/websockets/connections", a.handleListConnections)
	mux.HandleFunc("POST "+p+"/websockets/connections/{id}/disconnect", a.handleDisconnect)
	mux.HandleFunc("GET "+p+"/websockets/stats", a.handleConnectionStats)

	// API keys
	mux.HandleFunc("GET "+p+"/api-keys", a.handleListAPIKeys)
	mux.HandleFunc("POST "+p+"/api-keys", a.handleCreateAPIKey)
	mux.HandleFunc("GET "+p+"/api-keys/stats", a.handleAPIKeyStats)
	mux.HandleFunc("GET "+p+"/api-keys/permissions", a.handleAPIKeyPermissions)
	mux.HandleFunc("GET "+p+"/api-keys/{id}", a.handleGetAPIKey)
	mux.HandleFunc("PUT "+p+"/api-keys/{id}", a.handleUpdateAPIKey)
	mux.HandleFunc("DELETE "+p+"/api-keys/{id}", a.handleDeleteAPIKey)
	mux.HandleFunc("POST "+p+"/api-keys/{id}/regenerate", a.handleRegenerateAPIKey)

	// Transactions
	mux.HandleFunc("GET "+p+"/transactions", a.handleListTransactions)
	mux.HandleFunc("GET "+p+"/transactions/search", a.handleSearchTransactions)
	mux.HandleFunc("GET "+p+"/transactions/stats", a.handleTransactionStats)
	mux.HandleFunc("GET "+p+"/transactions/{hash}", a.handleGetTransaction)

	// System configuration
	mux.HandleFunc("GET "+p+"/config/blockchain", a.handleGetBlockchainConfig)
	mux.HandleFunc("PUT "+p+"/config/blockchain", a.handleUpdateBlockchainConfig)
	mux.HandleFunc("GET "+p+"/config/nodes", a.handleListNodes)
	mux.HandleFunc("POST "+p+"/config/nodes", a.handleCreateNode)
	mux.HandleFunc("GET "+p+"/config/database", a.handleGetDatabaseConfig)
	mux.HandleFunc("POST "+p+"/config/database/test", a.handleTestDatabase)

	// Logs
	mux.HandleFunc("GET "+p+"/logs", a.handleListLogs)
	mux.HandleFunc("GET "+p+"/logs/stats", a.handleLogStats)
	mux.HandleFunc("GET "+p+"/logs/export", a.handleExportLogs)
	mux.HandleFunc("POST "+p+"/logs/clear", a.handleClearLogs)
}
