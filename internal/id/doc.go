// Package id provides identifier and secret-token generation for admin
// resources.
//
// Sequential ids (webhook_4, key_3) come from per-collection counters owned
// by the store; this package covers the random shapes: API-key secrets,
// node ids, and export file names.
package id
