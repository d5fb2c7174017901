// Package admin provides the REST API for the TronTracker admin backend.
//
// The API exposes the resource groups the dashboard frontend needs:
// webhooks, websocket connections, API keys, transactions, system
// configuration, logs, and health. All are backed by the in-memory
// store. There is no authentication
// layer and no persistence; the service exists to feed the admin frontend.
package admin
