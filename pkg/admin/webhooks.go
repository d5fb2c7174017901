// Webhook management endpoints.

package admin

import (
	"errors"
	"net/http"

	"github.com/trontrack/trackd/internal/store"
)

// WebhookListResponse wraps the webhook collection.
type WebhookListResponse struct {
	Webhooks []store.Webhook `json:"webhooks"`
	Total    int             `json:"total"`
}

// webhookEvents is the fixed vocabulary of subscribable events.
var webhookEvents = []string{
	"transaction.created",
	"transaction.confirmed",
	"transfer.large",
	"address.activity",
	"system.status",
}

// handleListWebhooks handles GET {prefix}/webhooks.
func (a *API) handleListWebhooks(w http.ResponseWriter, r *http.Request) {
	webhooks := a.store.Webhooks()
	writeJSON(w, http.StatusOK, WebhookListResponse{
		Webhooks: webhooks,
		Total:    len(webhooks),
	})
}

// handleCreateWebhook handles POST {prefix}/webhooks.
func (a *API) handleCreateWebhook(w http.ResponseWriter, r *http.Request) {
	var params store.WebhookParams
	decodeBody(r, &params)
	writeJSON(w, http.StatusCreated, a.store.CreateWebhook(params))
}

// handleGetWebhook handles GET {prefix}/webhooks/{id}.
func (a *API) handleGetWebhook(w http.ResponseWriter, r *http.Request) {
	webhook, err := a.store.GetWebhook(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgWebhookNotFound)
		return
	}
	writeJSON(w, http.StatusOK, webhook)
}

// handleUpdateWebhook handles PUT {prefix}/webhooks/{id}.
func (a *API) handleUpdateWebhook(w http.ResponseWriter, r *http.Request) {
	var patch store.WebhookPatch
	decodeBody(r, &patch)

	webhook, err := a.store.UpdateWebhook(r.PathValue("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, ErrMsgWebhookNotFound)
		return
	}
	writeJSON(w, http.StatusOK, webhook)
}

// handleDeleteWebhook handles DELETE {prefix}/webhooks/{id}. Deleting an
// absent id still returns 204.
func (a *API) handleDeleteWebhook(w http.ResponseWriter, r *http.Request) {
	a.store.DeleteWebhook(r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

// handleTestWebhook handles POST {prefix}/webhooks/{id}/test. The result
// is a stub: no delivery leaves the process.
func (a *API) handleTestWebhook(w http.ResponseWriter, r *http.Request) {
	whID := r.PathValue("id")
	if _, err := a.store.GetWebhook(whID); err != nil {
		writeError(w, http.StatusNotFound, ErrMsgWebhookNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Test delivery sent",
		"webhook_id": whID,
		"status":     "success",
	})
}

// handleWebhookEvents handles GET {prefix}/webhooks/events.
func (a *API) handleWebhookEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"events": webhookEvents})
}

// handleWebhookStats handles GET {prefix}/webhooks/stats.
func (a *API) handleWebhookStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.WebhookStats())
}
