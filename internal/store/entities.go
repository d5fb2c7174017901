package store

import "time"

// Connection status values.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// Transaction status values.
const (
	TxSuccess = "success"
	TxFailed  = "failed"
	TxPending = "pending"
)

// Log levels. Exact-match values, not slog levels.
const (
	LevelError = "ERROR"
	LevelWarn  = "WARN"
	LevelInfo  = "INFO"
)

// Webhook is a managed webhook endpoint. Counters are cumulative delivery
// outcomes; SuccessRate is derived from them and recomputed whenever a
// counter changes.
type Webhook struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	Enabled       bool       `json:"enabled"`
	SuccessCount  int        `json:"success_count"`
	FailureCount  int        `json:"failure_count"`
	SuccessRate   float64    `json:"success_rate"`
	LastTriggered *time.Time `json:"last_triggered"`
}

// WebhookParams carries the client-supplied fields of a create request.
// Nil fields take defaults.
type WebhookParams struct {
	Name    *string `json:"name"`
	URL     *string `json:"url"`
	Enabled *bool   `json:"enabled"`
}

// WebhookPatch is a shallow-merge update. Only non-nil fields are applied;
// unknown JSON keys are dropped at decode time. SuccessRate is not
// patchable: it is recomputed from the merged counters.
type WebhookPatch struct {
	Name          *string    `json:"name"`
	URL           *string    `json:"url"`
	Enabled       *bool      `json:"enabled"`
	SuccessCount  *int       `json:"success_count"`
	FailureCount  *int       `json:"failure_count"`
	LastTriggered *time.Time `json:"last_triggered"`
}

// Connection is a tracked websocket client. Connections are seeded, never
// created over the API; the only mutation is the disconnect action.
type Connection struct {
	ID               string    `json:"id"`
	ClientIP         string    `json:"client_ip"`
	UserAgent        string    `json:"user_agent"`
	ConnectedAt      time.Time `json:"connected_at"`
	Status           string    `json:"status"`
	MessagesSent     int       `json:"messages_sent"`
	MessagesReceived int       `json:"messages_received"`
	Latency          int       `json:"latency"`
}

// APIKey is a managed API key. The secret is stored and listed in
// plaintext; key verification is out of scope for this service.
type APIKey struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Key          string     `json:"key"`
	Enabled      bool       `json:"enabled"`
	Permissions  []string   `json:"permissions"`
	RequestCount int        `json:"request_count"`
	LastUsed     *time.Time `json:"last_used"`
}

// APIKeyParams carries the client-supplied fields of a create request.
type APIKeyParams struct {
	Name        *string  `json:"name"`
	Enabled     *bool    `json:"enabled"`
	Permissions []string `json:"permissions"`
}

// APIKeyPatch is a shallow-merge update. The id and the secret are not
// patchable; secrets rotate only through the regenerate operation.
type APIKeyPatch struct {
	Name         *string    `json:"name"`
	Enabled      *bool      `json:"enabled"`
	Permissions  []string   `json:"permissions"`
	RequestCount *int       `json:"request_count"`
	LastUsed     *time.Time `json:"last_used"`
}

// Transaction is a tracked on-chain transfer. Read-only.
type Transaction struct {
	Hash        string    `json:"hash"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	Amount      string    `json:"amount"`
	Token       string    `json:"token"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Fee         string    `json:"fee"`
}

// LogEntry is one line of the service log buffer.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Module    string    `json:"module"`
	Message   string    `json:"message"`
}

// DashboardStats is the fixed aggregate snapshot shown on the dashboard.
// CurrentBlock and ScanSpeed are also echoed by the log stats.
type DashboardStats struct {
	TotalTransactions    int     `json:"total_transactions"`
	SuccessRate          float64 `json:"success_rate"`
	ActiveWebhooks       int     `json:"active_webhooks"`
	WebsocketConnections int     `json:"websocket_connections"`
	APIKeys              int     `json:"api_keys"`
	TotalRequests        int     `json:"total_requests"`
	CurrentBlock         int64   `json:"current_block"`
	ScanSpeed            int     `json:"scan_speed"`
	ErrorCount           int     `json:"error_count"`
}

// ChartPoint is one day of the synthetic dashboard series.
type ChartPoint struct {
	Date         string `json:"date"`
	Transactions int    `json:"transactions"`
	APICalls     int    `json:"api_calls"`
}
