package store

import "time"

func ts(s string) *time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return &t
}

// Seed installs the fixture collections: three webhooks, two tracked
// connections, two API keys, two transactions, three log entries, and the
// dashboard snapshot. Sequences are advanced past the fixtures so created
// ids never collide with seeded ones.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.webhooks = []Webhook{
		{
			ID:            "webhook_1",
			Name:          "Transaction notifications",
			URL:           "https://api.example.com/webhook/transactions",
			Enabled:       true,
			SuccessCount:  1234,
			FailureCount:  45,
			SuccessRate:   96.5,
			LastTriggered: ts("2024-07-29T19:45:00Z"),
		},
		{
			ID:            "webhook_2",
			Name:          "Large transfer alerts",
			URL:           "https://alert.example.com/webhook/large-transfers",
			Enabled:       true,
			SuccessCount:  567,
			FailureCount:  12,
			SuccessRate:   97.9,
			LastTriggered: ts("2024-07-29T18:30:00Z"),
		},
		{
			ID:            "webhook_3",
			Name:          "System status monitor",
			URL:           "https://monitor.example.com/webhook/status",
			Enabled:       false,
			SuccessCount:  890,
			FailureCount:  78,
			SuccessRate:   91.9,
			LastTriggered: ts("2024-07-29T16:20:00Z"),
		},
	}
	s.webhookSeq = len(s.webhooks)

	s.connections = []Connection{
		{
			ID:               "conn_1",
			ClientIP:         "192.168.1.100",
			UserAgent:        "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			ConnectedAt:      *ts("2024-07-29T18:30:00Z"),
			Status:           StatusConnected,
			MessagesSent:     1234,
			MessagesReceived: 567,
			Latency:          15,
		},
		{
			ID:               "conn_2",
			ClientIP:         "10.0.0.50",
			UserAgent:        "TronTracker Mobile App v2.1.0",
			ConnectedAt:      *ts("2024-07-29T17:15:00Z"),
			Status:           StatusConnected,
			MessagesSent:     2345,
			MessagesReceived: 890,
			Latency:          28,
		},
	}

	s.apiKeys = []APIKey{
		{
			ID:           "key_1",
			Name:         "Primary API key",
			Key:          "sk_test_1234567890abcdef",
			Enabled:      true,
			Permissions:  []string{"read_transactions", "read_addresses", "manage_webhooks"},
			RequestCount: 125430,
			LastUsed:     ts("2024-07-29T19:30:00Z"),
		},
		{
			ID:           "key_2",
			Name:         "Mobile app key",
			Key:          "sk_test_abcdef1234567890",
			Enabled:      true,
			Permissions:  []string{"read_transactions", "read_addresses"},
			RequestCount: 89234,
			LastUsed:     ts("2024-07-29T18:45:00Z"),
		},
	}
	s.keySeq = len(s.apiKeys)

	s.transactions = []Transaction{
		{
			Hash:        "0x1234567890abcdef1234567890abcdef12345678",
			FromAddress: "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t",
			ToAddress:   "TLPpXqzCanWdHqaYYUFPYRrW4YvsVJvM7d",
			Amount:      "1000.50",
			Token:       "USDT",
			Status:      TxSuccess,
			Timestamp:   *ts("2024-07-29T19:45:30Z"),
			Fee:         "1.5",
		},
		{
			Hash:        "0xabcdef1234567890abcdef1234567890abcdef12",
			FromAddress: "TLPpXqzCanWdHqaYYUFPYRrW4YvsVJvM7d",
			ToAddress:   "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t",
			Amount:      "500.25",
			Token:       "TRX",
			Status:      TxSuccess,
			Timestamp:   *ts("2024-07-29T19:44:15Z"),
			Fee:         "0.8",
		},
	}

	s.logs = []LogEntry{
		{
			ID:        "log_1",
			Timestamp: *ts("2024-07-29T19:45:30Z"),
			Level:     LevelError,
			Module:    "Webhook",
			Message:   "Delivery failed after 3 retries",
		},
		{
			ID:        "log_2",
			Timestamp: *ts("2024-07-29T19:44:36Z"),
			Level:     LevelError,
			Module:    "Scanner",
			Message:   "Block fetch timed out",
		},
		{
			ID:        "log_3",
			Timestamp: *ts("2024-07-29T19:44:33Z"),
			Level:     LevelWarn,
			Module:    "Webhook",
			Message:   "Slow endpoint response (2.4s)",
		},
	}

	s.dashboard = DashboardStats{
		TotalTransactions:    58778,
		SuccessRate:          96.5,
		ActiveWebhooks:       3,
		WebsocketConnections: 4,
		APIKeys:              4,
		TotalRequests:        487234,
		CurrentBlock:         62845149,
		ScanSpeed:            20,
		ErrorCount:           26,
	}
}
