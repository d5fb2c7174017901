package id

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret(t *testing.T) {
	s := Secret(rand.New(rand.NewSource(1)))
	assert.Regexp(t, `^sk_test_[0-9a-f]{16}$`, s)

	// Same seed, same secret.
	assert.Equal(t, s, Secret(rand.New(rand.NewSource(1))))

	// Different seed, different secret.
	assert.NotEqual(t, s, Secret(rand.New(rand.NewSource(2))))
}

func TestNode(t *testing.T) {
	n := Node()
	assert.Regexp(t, `^node_[0-9a-f]{8}$`, n)
	assert.NotEqual(t, n, Node())
}

func TestRequest(t *testing.T) {
	r := Request()
	_, err := uuid.Parse(r)
	require.NoError(t, err)
	assert.NotEqual(t, r, Request())
}

func TestExportFile(t *testing.T) {
	now := time.Date(2024, 7, 30, 12, 34, 56, 0, time.UTC)
	assert.Equal(t, "logs_export_20240730T123456Z.csv", ExportFile(now))

	// Non-UTC inputs are normalized.
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "logs_export_20240730T173456Z.csv", ExportFile(time.Date(2024, 7, 30, 12, 34, 56, 0, est)))
}
