package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesInstruments(t *testing.T) {
	RequestsTotal.WithLabelValues("GET", "200").Inc()
	RequestDuration.Observe(0.05)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	buf, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	body := string(buf)
	assert.Contains(t, body, "trackd_admin_requests_total")
	assert.Contains(t, body, `method="GET"`)
	assert.Contains(t, body, "trackd_admin_request_duration_seconds_bucket")
}

func TestRegistrySharedWithFactory(t *testing.T) {
	families, err := Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "trackd_admin_request_duration_seconds")
}
