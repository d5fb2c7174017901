package store

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2024, 7, 30, 12, 0, 0, 0, time.UTC)
}

func newSeeded(t *testing.T) *Store {
	t.Helper()
	s := New(WithRand(rand.New(rand.NewSource(1))), WithClock(testClock))
	s.Seed()
	return s
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }
func boolp(b bool) *bool    { return &b }

func TestSeedCollections(t *testing.T) {
	s := newSeeded(t)

	assert.Len(t, s.Webhooks(), 3)
	assert.Len(t, s.Connections(), 2)
	assert.Len(t, s.APIKeys(), 2)
	assert.Len(t, s.Transactions(), 2)
	assert.Len(t, s.Logs("", ""), 3)
	assert.Equal(t, int64(62845149), s.Dashboard().CurrentBlock)
}

func TestCreateWebhookDefaults(t *testing.T) {
	s := newSeeded(t)

	w := s.CreateWebhook(WebhookParams{})
	assert.Equal(t, "webhook_4", w.ID)
	assert.Equal(t, "New webhook", w.Name)
	assert.Empty(t, w.URL)
	assert.True(t, w.Enabled)
	assert.Zero(t, w.SuccessCount)
	assert.Zero(t, w.FailureCount)
	assert.Equal(t, 100.0, w.SuccessRate)
	assert.Nil(t, w.LastTriggered)

	got, err := s.GetWebhook("webhook_4")
	require.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestWebhookIDsDoNotRepeatAfterDelete(t *testing.T) {
	s := newSeeded(t)

	w := s.CreateWebhook(WebhookParams{Name: strp("first")})
	s.DeleteWebhook(w.ID)
	next := s.CreateWebhook(WebhookParams{Name: strp("second")})

	assert.NotEqual(t, w.ID, next.ID)
	assert.Equal(t, "webhook_5", next.ID)
}

func TestUpdateWebhookShallowMerge(t *testing.T) {
	s := newSeeded(t)

	updated, err := s.UpdateWebhook("webhook_1", WebhookPatch{Name: strp("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	// Untouched fields survive the merge.
	assert.Equal(t, "https://api.example.com/webhook/transactions", updated.URL)
	assert.Equal(t, 1234, updated.SuccessCount)
	assert.Equal(t, 96.5, updated.SuccessRate)
}

func TestUpdateWebhookRecomputesRate(t *testing.T) {
	s := newSeeded(t)

	updated, err := s.UpdateWebhook("webhook_1", WebhookPatch{
		SuccessCount: intp(75),
		FailureCount: intp(25),
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.SuccessRate)

	// Zero call total leaves the previous rate alone.
	updated, err = s.UpdateWebhook("webhook_1", WebhookPatch{
		SuccessCount: intp(0),
		FailureCount: intp(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.SuccessRate)
}

func TestUpdateWebhookNotFound(t *testing.T) {
	s := newSeeded(t)

	_, err := s.UpdateWebhook("webhook_999", WebhookPatch{Name: strp("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteWebhookAbsentIsNoop(t *testing.T) {
	s := newSeeded(t)

	s.DeleteWebhook("webhook_999")
	assert.Len(t, s.Webhooks(), 3)
}

func TestWebhookStats(t *testing.T) {
	s := newSeeded(t)

	st := s.WebhookStats()
	assert.Equal(t, 3, st.TotalWebhooks)
	assert.Equal(t, 2, st.ActiveWebhooks)
	assert.Equal(t, 1234+45+567+12+890+78, st.TotalCalls)
	want := float64(1234+567+890) / float64(1234+45+567+12+890+78) * 100
	assert.InDelta(t, want, st.SuccessRate, 0.01)
}

func TestWebhookStatsEmptyCollection(t *testing.T) {
	s := New(WithRand(rand.New(rand.NewSource(1))))

	st := s.WebhookStats()
	assert.Zero(t, st.TotalWebhooks)
	assert.Zero(t, st.TotalCalls)
	assert.Zero(t, st.SuccessRate)
}

func TestStatsArePure(t *testing.T) {
	s := newSeeded(t)

	assert.Equal(t, s.WebhookStats(), s.WebhookStats())
	assert.Equal(t, s.ConnectionStats(), s.ConnectionStats())
	assert.Equal(t, s.APIKeyStats(), s.APIKeyStats())
	assert.Equal(t, s.TransactionStats(), s.TransactionStats())
	assert.Equal(t, s.LogStats(), s.LogStats())
}

func TestDisconnectIsIdempotent(t *testing.T) {
	s := newSeeded(t)

	require.NoError(t, s.Disconnect("conn_1"))
	require.NoError(t, s.Disconnect("conn_1"))

	for _, c := range s.Connections() {
		if c.ID == "conn_1" {
			assert.Equal(t, StatusDisconnected, c.Status)
		}
	}

	assert.ErrorIs(t, s.Disconnect("conn_999"), ErrNotFound)
}

func TestConnectionStats(t *testing.T) {
	s := newSeeded(t)

	st := s.ConnectionStats()
	assert.Equal(t, 2, st.TotalConnections)
	assert.Equal(t, 2, st.ActiveConnections)
	assert.Equal(t, 1234+567+2345+890, st.TotalMessages)
	assert.Equal(t, 21.5, st.AvgLatency)

	require.NoError(t, s.Disconnect("conn_1"))
	assert.Equal(t, 1, s.ConnectionStats().ActiveConnections)
}

func TestCreateAPIKey(t *testing.T) {
	s := newSeeded(t)

	k := s.CreateAPIKey(APIKeyParams{Name: strp("Test")})
	assert.Equal(t, "key_3", k.ID)
	assert.Equal(t, "Test", k.Name)
	assert.Regexp(t, regexp.MustCompile(`^sk_test_[0-9a-f]{16}$`), k.Key)
	assert.True(t, k.Enabled)
	assert.Empty(t, k.Permissions)
	assert.Zero(t, k.RequestCount)
	assert.Nil(t, k.LastUsed)
}

func TestCreateAPIKeySecretsAreDeterministicPerSeed(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(7))))
	b := New(WithRand(rand.New(rand.NewSource(7))))
	a.Seed()
	b.Seed()

	assert.Equal(t, a.CreateAPIKey(APIKeyParams{}).Key, b.CreateAPIKey(APIKeyParams{}).Key)
}

func TestRegenerateAPIKey(t *testing.T) {
	s := newSeeded(t)

	before, err := s.GetAPIKey("key_1")
	require.NoError(t, err)

	after, err := s.RegenerateAPIKey("key_1")
	require.NoError(t, err)
	assert.NotEqual(t, before.Key, after.Key)
	assert.Regexp(t, regexp.MustCompile(`^sk_test_[0-9a-f]{16}$`), after.Key)

	_, err = s.RegenerateAPIKey("key_999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAPIKeyDoesNotTouchSecret(t *testing.T) {
	s := newSeeded(t)

	updated, err := s.UpdateAPIKey("key_1", APIKeyPatch{
		Name:        strp("renamed"),
		Permissions: []string{"read_stats"},
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, []string{"read_stats"}, updated.Permissions)
	assert.Equal(t, "sk_test_1234567890abcdef", updated.Key)
	assert.Equal(t, 125430, updated.RequestCount)
}

func TestAPIKeyStats(t *testing.T) {
	s := newSeeded(t)

	st := s.APIKeyStats()
	assert.Equal(t, 2, st.TotalKeys)
	assert.Equal(t, 2, st.ActiveKeys)
	assert.Equal(t, 125430+89234, st.TotalRequests)
	assert.Equal(t, float64(125430+89234)/2, st.AvgRequestsPerKey)
}

func TestSearchTransactions(t *testing.T) {
	s := newSeeded(t)

	// Empty filters match everything.
	assert.Len(t, s.SearchTransactions("", ""), 2)

	// Case-insensitive substring over hash and addresses.
	assert.Len(t, s.SearchTransactions("0X1234", ""), 1)
	assert.Len(t, s.SearchTransactions("tr7nhqje", ""), 2)
	assert.Len(t, s.SearchTransactions("nomatch", ""), 0)

	// Status is exact, composed with AND.
	assert.Len(t, s.SearchTransactions("", TxSuccess), 2)
	assert.Len(t, s.SearchTransactions("", TxPending), 0)
	assert.Len(t, s.SearchTransactions("0x1234", TxSuccess), 1)
}

func TestTransactionStats(t *testing.T) {
	s := newSeeded(t)

	st := s.TransactionStats()
	assert.Equal(t, 2, st.TotalTransactions)
	assert.Equal(t, 2, st.SuccessCount)
	assert.Equal(t, 100.0, st.SuccessRate)
	assert.Equal(t, 2.3, st.TotalFees)
	assert.Equal(t, 1.15, st.AvgFee)
}

func TestTransactionStatsEmpty(t *testing.T) {
	s := New(WithRand(rand.New(rand.NewSource(1))))

	st := s.TransactionStats()
	assert.Zero(t, st.TotalTransactions)
	assert.Zero(t, st.SuccessRate)
	assert.Zero(t, st.TotalFees)
	assert.Zero(t, st.AvgFee)
}

func TestLogFilters(t *testing.T) {
	s := newSeeded(t)

	errors := s.Logs(LevelError, "")
	assert.Len(t, errors, 2)
	for _, l := range errors {
		assert.Equal(t, LevelError, l.Level)
	}

	// Exact match, not substring.
	assert.Len(t, s.Logs("ERR", ""), 0)

	assert.Len(t, s.Logs("", "Webhook"), 2)
	assert.Len(t, s.Logs(LevelError, "Webhook"), 1)
}

func TestClearLogs(t *testing.T) {
	s := newSeeded(t)

	s.ClearLogs()
	assert.Empty(t, s.Logs("", ""))

	st := s.LogStats()
	assert.Zero(t, st.TotalLogs)
	assert.Zero(t, st.ErrorCount)
	// The scan position still echoes the dashboard snapshot.
	assert.Equal(t, int64(62845149), st.CurrentBlock)
	assert.Equal(t, 20, st.ScanSpeed)
}

func TestChartData(t *testing.T) {
	s := newSeeded(t)

	points := s.ChartData()
	require.Len(t, points, 7)
	assert.Equal(t, "2024-07-24", points[0].Date)
	assert.Equal(t, "2024-07-30", points[6].Date)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.Transactions, 5000)
		assert.LessOrEqual(t, p.Transactions, 8000)
		assert.GreaterOrEqual(t, p.APICalls, 15000)
		assert.LessOrEqual(t, p.APICalls, 25000)
	}
}

func TestChartDataDeterministicPerSeed(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(42))), WithClock(testClock))
	b := New(WithRand(rand.New(rand.NewSource(42))), WithClock(testClock))

	assert.Equal(t, a.ChartData(), b.ChartData())
}

func TestCounts(t *testing.T) {
	s := newSeeded(t)

	counts := s.Counts()
	assert.Equal(t, 3, counts["webhooks"])
	assert.Equal(t, 2, counts["connections"])
	assert.Equal(t, 2, counts["api_keys"])
	assert.Equal(t, 2, counts["transactions"])
	assert.Equal(t, 3, counts["logs"])

	s.ClearLogs()
	assert.Zero(t, s.Counts()["logs"])
}

func TestCreateWebhookHonorsParams(t *testing.T) {
	s := newSeeded(t)

	w := s.CreateWebhook(WebhookParams{
		Name:    strp("Deploy hook"),
		URL:     strp("https://ci.example.com/hook"),
		Enabled: boolp(false),
	})
	assert.Equal(t, "Deploy hook", w.Name)
	assert.Equal(t, "https://ci.example.com/hook", w.URL)
	assert.False(t, w.Enabled)
}
