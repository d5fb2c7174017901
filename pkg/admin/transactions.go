// Transaction read and search endpoints. The collection is read-only.

package admin

import (
	"net/http"

	"github.com/trontrack/trackd/internal/store"
)

// TransactionListResponse wraps the transaction collection.
type TransactionListResponse struct {
	Transactions []store.Transaction `json:"transactions"`
	Total        int                 `json:"total"`
}

// handleListTransactions handles GET {prefix}/transactions.
func (a *API) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := a.store.Transactions()
	writeJSON(w, http.StatusOK, TransactionListResponse{
		Transactions: txs,
		Total:        len(txs),
	})
}

// handleSearchTransactions handles GET {prefix}/transactions/search.
// Query params: q (case-insensitive substring over hash and addresses)
// and status (exact match); both optional, AND semantics.
func (a *API) handleSearchTransactions(w http.ResponseWriter, r *http.Request) {
	txs := a.store.SearchTransactions(
		r.URL.Query().Get("q"),
		r.URL.Query().Get("status"),
	)
	writeJSON(w, http.StatusOK, TransactionListResponse{
		Transactions: txs,
		Total:        len(txs),
	})
}

// handleGetTransaction handles GET {prefix}/transactions/{hash}.
func (a *API) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := a.store.GetTransaction(r.PathValue("hash"))
	if err != nil {
		writeError(w, http.StatusNotFound, ErrMsgTransactionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

// handleTransactionStats handles GET {prefix}/transactions/stats.
func (a *API) handleTransactionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.TransactionStats())
}
