package store

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/trontrack/trackd/internal/id"
)

// ErrNotFound is returned by id-based lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// Store owns all admin collections. Safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	webhooks   []Webhook
	webhookSeq int

	connections []Connection

	apiKeys []APIKey
	keySeq  int

	transactions []Transaction
	logs         []LogEntry

	dashboard DashboardStats

	rng *rand.Rand
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the random source used for API-key secrets and chart data.
// Tests pass a seeded source for deterministic output.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// WithClock sets the time source used for chart dates and export names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty Store. Call Seed to install the fixture records.
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Now returns the store's current time. Exposed so handlers share the
// injected clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// --- Webhooks ---

// Webhooks returns all webhooks in insertion order.
func (s *Store) Webhooks() []Webhook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Webhook, len(s.webhooks))
	copy(out, s.webhooks)
	return out
}

// GetWebhook returns the webhook with the given id.
func (s *Store) GetWebhook(whID string) (Webhook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.webhooks {
		if w.ID == whID {
			return w, nil
		}
	}
	return Webhook{}, ErrNotFound
}

// CreateWebhook appends a new webhook with defaulted fields and a fresh
// sequential id. Counters start at zero and the rate at 100.
func (s *Store) CreateWebhook(p WebhookParams) Webhook {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.webhookSeq++
	w := Webhook{
		ID:          fmt.Sprintf("webhook_%d", s.webhookSeq),
		Name:        "New webhook",
		Enabled:     true,
		SuccessRate: 100.0,
	}
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.URL != nil {
		w.URL = *p.URL
	}
	if p.Enabled != nil {
		w.Enabled = *p.Enabled
	}
	s.webhooks = append(s.webhooks, w)
	return w
}

// UpdateWebhook shallow-merges the patch into the stored record. When a
// patch touches either counter the success rate is recomputed from the
// merged values; a zero call total leaves the previous rate in place.
func (s *Store) UpdateWebhook(whID string, p WebhookPatch) (Webhook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.webhooks {
		w := &s.webhooks[i]
		if w.ID != whID {
			continue
		}
		if p.Name != nil {
			w.Name = *p.Name
		}
		if p.URL != nil {
			w.URL = *p.URL
		}
		if p.Enabled != nil {
			w.Enabled = *p.Enabled
		}
		if p.LastTriggered != nil {
			w.LastTriggered = p.LastTriggered
		}
		if p.SuccessCount != nil || p.FailureCount != nil {
			if p.SuccessCount != nil {
				w.SuccessCount = *p.SuccessCount
			}
			if p.FailureCount != nil {
				w.FailureCount = *p.FailureCount
			}
			if total := w.SuccessCount + w.FailureCount; total > 0 {
				w.SuccessRate = round2(float64(w.SuccessCount) / float64(total) * 100)
			}
		}
		return *w, nil
	}
	return Webhook{}, ErrNotFound
}

// DeleteWebhook removes the webhook with the given id. Deleting an absent
// id is a no-op, not an error.
func (s *Store) DeleteWebhook(whID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.webhooks {
		if w.ID == whID {
			s.webhooks = append(s.webhooks[:i], s.webhooks[i+1:]...)
			return
		}
	}
}

// --- WebSocket connections ---

// Connections returns all tracked connections in insertion order.
func (s *Store) Connections() []Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Connection, len(s.connections))
	copy(out, s.connections)
	return out
}

// Disconnect marks the connection as disconnected. Idempotent: repeating
// the action on an already-disconnected id succeeds and re-sets the value.
func (s *Store) Disconnect(connID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.connections {
		if s.connections[i].ID == connID {
			s.connections[i].Status = StatusDisconnected
			return nil
		}
	}
	return ErrNotFound
}

// --- API keys ---

// APIKeys returns all keys in insertion order, secrets included.
func (s *Store) APIKeys() []APIKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]APIKey, len(s.apiKeys))
	copy(out, s.apiKeys)
	for i := range out {
		out[i].Permissions = append([]string(nil), out[i].Permissions...)
	}
	return out
}

// GetAPIKey returns the key with the given id.
func (s *Store) GetAPIKey(keyID string) (APIKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, k := range s.apiKeys {
		if k.ID == keyID {
			return k, nil
		}
	}
	return APIKey{}, ErrNotFound
}

// CreateAPIKey appends a new key with a generated secret and a fresh
// sequential id.
func (s *Store) CreateAPIKey(p APIKeyParams) APIKey {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keySeq++
	k := APIKey{
		ID:          fmt.Sprintf("key_%d", s.keySeq),
		Name:        "New API key",
		Key:         id.Secret(s.rng),
		Enabled:     true,
		Permissions: []string{},
	}
	if p.Name != nil {
		k.Name = *p.Name
	}
	if p.Enabled != nil {
		k.Enabled = *p.Enabled
	}
	if p.Permissions != nil {
		k.Permissions = p.Permissions
	}
	s.apiKeys = append(s.apiKeys, k)
	return k
}

// UpdateAPIKey shallow-merges the patch into the stored record.
func (s *Store) UpdateAPIKey(keyID string, p APIKeyPatch) (APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.apiKeys {
		k := &s.apiKeys[i]
		if k.ID != keyID {
			continue
		}
		if p.Name != nil {
			k.Name = *p.Name
		}
		if p.Enabled != nil {
			k.Enabled = *p.Enabled
		}
		if p.Permissions != nil {
			k.Permissions = p.Permissions
		}
		if p.RequestCount != nil {
			k.RequestCount = *p.RequestCount
		}
		if p.LastUsed != nil {
			k.LastUsed = p.LastUsed
		}
		return *k, nil
	}
	return APIKey{}, ErrNotFound
}

// RegenerateAPIKey replaces the secret of an existing key.
func (s *Store) RegenerateAPIKey(keyID string) (APIKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apiKeys {
		if s.apiKeys[i].ID == keyID {
			s.apiKeys[i].Key = id.Secret(s.rng)
			return s.apiKeys[i], nil
		}
	}
	return APIKey{}, ErrNotFound
}

// DeleteAPIKey removes the key with the given id. No-op when absent.
func (s *Store) DeleteAPIKey(keyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, k := range s.apiKeys {
		if k.ID == keyID {
			s.apiKeys = append(s.apiKeys[:i], s.apiKeys[i+1:]...)
			return
		}
	}
}

// --- Transactions ---

// Transactions returns all tracked transactions in insertion order.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// GetTransaction returns the transaction with the given hash.
func (s *Store) GetTransaction(hash string) (Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.Hash == hash {
			return t, nil
		}
	}
	return Transaction{}, ErrNotFound
}

// SearchTransactions filters by a case-insensitive substring over hash and
// both addresses, and by exact status. Both filters are optional and
// compose with AND semantics; empty values match everything.
func (s *Store) SearchTransactions(query, status string) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if query != "" && !t.matchesQuery(query) {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// --- Logs ---

// Logs returns entries matching the exact-match level and module filters,
// in insertion order. Empty filter values match everything.
func (s *Store) Logs(level, module string) []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LogEntry, 0, len(s.logs))
	for _, l := range s.logs {
		if level != "" && l.Level != level {
			continue
		}
		if module != "" && l.Module != module {
			continue
		}
		out = append(out, l)
	}
	return out
}

// ClearLogs empties the log buffer. Always succeeds.
func (s *Store) ClearLogs() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = nil
}

// --- Dashboard ---

// Dashboard returns the fixed aggregate snapshot.
func (s *Store) Dashboard() DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dashboard
}

// ChartData produces the 7-day synthetic series ending today. Values are
// drawn fresh on every call and never persisted.
func (s *Store) ChartData() []ChartPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	points := make([]ChartPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		points = append(points, ChartPoint{
			Date:         day.Format("2006-01-02"),
			Transactions: 5000 + s.rng.Intn(3001),
			APICalls:     15000 + s.rng.Intn(10001),
		})
	}
	return points
}

// Counts reports the size of every collection, for the status endpoint.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		"webhooks":     len(s.webhooks),
		"connections":  len(s.connections),
		"api_keys":     len(s.apiKeys),
		"transactions": len(s.transactions),
		"logs":         len(s.logs),
	}
}
