package request

import "encoding/json"

// WebhookRequest is the gateway callback payload.
//
// Raw keeps the full body as received; gateways deliver at-least-once and
// schemas drift, so only the two fields the lifecycle needs are typed.
type WebhookRequest struct {
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	Raw       json.RawMessage `json:"-"`
}
