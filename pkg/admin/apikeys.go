// API-key management endpoints. Secrets are listed in plaintext: this
// service manages the records, it never verifies them.

package admin

import (
	"errors"
	"net/http"

	"github.com/trontrack/trackd/internal/store"
)

// APIKeyListResponse wraps the API-key collection.
type APIKeyListResponse struct {
	APIKeys []store.APIKey `json:"api_keys"`
	Total   int            `json:"total"`
}

// apiKeyPermissions is the fixed vocabulary of grantable scopes.
var apiKeyPermissions = []string{
	"read_transactions",
	"read_addresses",
	"manage_webhooks",
	"manage_api_keys",
	"read_stats",
}

// handleListAPIKeys handles GET {prefix}/api-keys.
func (a *API) handleListAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys := a.store.APIKeys()
	writeJSON(w, http.StatusOK, APIKeyListResponse{
		APIKeys: keys,
		Total:   len(keys),
	})
}

// handleCreateAPIKey handles POST {prefix}/api-keys.
func (a *API) handleCreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var params store.APIKeyParams
	decodeBody(r, &params)
	writeJSON(w, http.StatusCreated, a.store.CreateAPIKey(params))
}

// handleGetAPIKey handles GET {prefix}/api-keys/{id}.
func (a *API) handleGetAPIKey(w http.ResponseWriter, r *http.Request) {
	key, err := a.store.GetAPIKey(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgAPIKeyNotFound)
		return
	}
	writeJSON(w, http.StatusOK, key)
}

// handleUpdateAPIKey handles PUT {prefix}/api-keys/{id}.
func (a *API) handleUpdateAPIKey(w http.ResponseWriter, r *http.Request) {
	var patch store.APIKeyPatch
	decodeBody(r, &patch)

	key, err := a.store.UpdateAPIKey(r.PathValue("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrMsgAPIKeyNotFound)
		return
	}
	writeJSON(w, http.StatusOK, key)
}

// handleDeleteAPIKey handles DELETE {prefix}/api-keys/{id}. Always 204.
func (a *API) handleDeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	a.store.DeleteAPIKey(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleRegenerateAPIKey handles POST {prefix}/api-keys/{id}/regenerate.
func (a *API) handleRegenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	key, err := a.store.RegenerateAPIKey(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrMsgAPIKeyNotFound)
		return
	}
	writeJSON(w, http.StatusOK, key)
}

// handleAPIKeyPermissions handles GET {prefix}/api-keys/permissions.
func (a *API) handleAPIKeyPermissions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"permissions": apiKeyPermissions})
}

// handleAPIKeyStats handles GET {prefix}/api-keys/stats.
func (a *API) handleAPIKeyStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.APIKeyStats())
}
