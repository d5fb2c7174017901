// Error responses for the admin API.

package admin

// Not-found messages, matching the admin frontend's expectations.
const (
	ErrMsgWebhookNotFound     = "Webhook not found"
	ErrMsgConnectionNotFound  = "Connection not found"
	ErrMsgAPIKeyNotFound      = "API Key not found"
	ErrMsgTransactionNotFound = "Transaction not found"
)

// ErrorResponse is the error body: {"error": <message>}.
type ErrorResponse struct {
	Error string `json:"error"`
}
