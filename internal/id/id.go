package id

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SecretPrefix is prepended to every generated API-key secret.
const SecretPrefix = "sk_test_"

// Secret generates an API-key secret: the fixed prefix followed by exactly
// 16 hex digits drawn from rng. Passing a seeded rng makes the result
// deterministic for tests.
func Secret(rng *rand.Rand) string {
	return fmt.Sprintf("%s%016x", SecretPrefix, rng.Uint64())
}

// Node generates a node id from a random UUID. Node records are never
// stored, so the id only needs to be unique, not sequential.
func Node() string {
	return "node_" + strings.Split(uuid.NewString(), "-")[0]
}

// Request generates a request id for the X-Request-ID header.
func Request() string {
	return uuid.NewString()
}

// ExportFile builds a timestamped log-export file name.
func ExportFile(now time.Time) string {
	return fmt.Sprintf("logs_export_%s.csv", now.UTC().Format("20060102T150405Z"))
}
