// Package store holds the in-memory collections behind the admin API.
//
// Every resource group (webhooks, websocket connections, API keys,
// transactions, logs, dashboard snapshot) lives in one Store as a
// slice-backed collection so listings preserve insertion order. A single
// RWMutex serializes mutation; list and stats methods work on copies.
//
// The Store is the whole data layer: records are seeded at startup and
// reset on restart. Randomness (API-key secrets, chart data) and the clock
// are injectable so tests get deterministic output.
package store
