package store

import (
	"math"
	"strconv"
	"strings"
)

// WebhookStats summarizes the webhook collection.
type WebhookStats struct {
	TotalWebhooks  int     `json:"total_webhooks"`
	ActiveWebhooks int     `json:"active_webhooks"`
	TotalCalls     int     `json:"total_calls"`
	SuccessRate    float64 `json:"success_rate"`
}

// ConnectionStats summarizes the websocket-connection collection.
type ConnectionStats struct {
	TotalConnections  int     `json:"total_connections"`
	ActiveConnections int     `json:"active_connections"`
	TotalMessages     int     `json:"total_messages"`
	AvgLatency        float64 `json:"avg_latency"`
}

// APIKeyStats summarizes the API-key collection.
type APIKeyStats struct {
	TotalKeys         int     `json:"total_keys"`
	ActiveKeys        int     `json:"active_keys"`
	TotalRequests     int     `json:"total_requests"`
	AvgRequestsPerKey float64 `json:"avg_requests_per_key"`
}

// TransactionStats summarizes the transaction collection.
type TransactionStats struct {
	TotalTransactions int     `json:"total_transactions"`
	SuccessCount      int     `json:"success_count"`
	SuccessRate       float64 `json:"success_rate"`
	TotalFees         float64 `json:"total_fees"`
	AvgFee            float64 `json:"avg_fee"`
}

// LogStats summarizes the log buffer, plus the scan position echoed from
// the dashboard snapshot.
type LogStats struct {
	TotalLogs    int   `json:"total_logs"`
	ErrorCount   int   `json:"error_count"`
	WarnCount    int   `json:"warn_count"`
	InfoCount    int   `json:"info_count"`
	CurrentBlock int64 `json:"current_block"`
	ScanSpeed    int   `json:"scan_speed"`
}

// WebhookStats computes aggregate delivery stats over the current
// collection. The overall rate is 0 when no calls are recorded.
func (s *Store) WebhookStats() WebhookStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st WebhookStats
	st.TotalWebhooks = len(s.webhooks)
	var success, failure int
	for _, w := range s.webhooks {
		if w.Enabled {
			st.ActiveWebhooks++
		}
		success += w.SuccessCount
		failure += w.FailureCount
	}
	st.TotalCalls = success + failure
	if st.TotalCalls > 0 {
		st.SuccessRate = round2(float64(success) / float64(st.TotalCalls) * 100)
	}
	return st
}

// ConnectionStats computes aggregate connection stats. Average latency is
// 0 when the collection is empty.
func (s *Store) ConnectionStats() ConnectionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st ConnectionStats
	st.TotalConnections = len(s.connections)
	var latencySum int
	for _, c := range s.connections {
		if c.Status == StatusConnected {
			st.ActiveConnections++
		}
		st.TotalMessages += c.MessagesSent + c.MessagesReceived
		latencySum += c.Latency
	}
	if len(s.connections) > 0 {
		st.AvgLatency = round2(float64(latencySum) / float64(len(s.connections)))
	}
	return st
}

// APIKeyStats computes aggregate usage stats. The per-key average is 0
// when the collection is empty.
func (s *Store) APIKeyStats() APIKeyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st APIKeyStats
	st.TotalKeys = len(s.apiKeys)
	for _, k := range s.apiKeys {
		if k.Enabled {
			st.ActiveKeys++
		}
		st.TotalRequests += k.RequestCount
	}
	if st.TotalKeys > 0 {
		st.AvgRequestsPerKey = round2(float64(st.TotalRequests) / float64(st.TotalKeys))
	}
	return st
}

// TransactionStats computes aggregate transfer stats. All fields are zero
// when the collection is empty; unparseable fees contribute nothing.
func (s *Store) TransactionStats() TransactionStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st TransactionStats
	st.TotalTransactions = len(s.transactions)
	var fees float64
	for _, t := range s.transactions {
		if t.Status == TxSuccess {
			st.SuccessCount++
		}
		if fee, err := strconv.ParseFloat(t.Fee, 64); err == nil {
			fees += fee
		}
	}
	if st.TotalTransactions > 0 {
		st.SuccessRate = round2(float64(st.SuccessCount) / float64(st.TotalTransactions) * 100)
		st.TotalFees = round2(fees)
		st.AvgFee = round2(fees / float64(st.TotalTransactions))
	}
	return st
}

// LogStats computes per-level counts and echoes the scan position from the
// dashboard snapshot.
func (s *Store) LogStats() LogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := LogStats{
		TotalLogs:    len(s.logs),
		CurrentBlock: s.dashboard.CurrentBlock,
		ScanSpeed:    s.dashboard.ScanSpeed,
	}
	for _, l := range s.logs {
		switch l.Level {
		case LevelError:
			st.ErrorCount++
		case LevelWarn:
			st.WarnCount++
		case LevelInfo:
			st.InfoCount++
		}
	}
	return st
}

func (t Transaction) matchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Hash), q) ||
		strings.Contains(strings.ToLower(t.FromAddress), q) ||
		strings.Contains(strings.ToLower(t.ToAddress), q)
}

// round2 rounds to two decimal places, matching the wire format of every
// aggregate rate and average.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
