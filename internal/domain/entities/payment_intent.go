package entities

import (
	"encoding/json"
	"time"
)

// IntentStatus represents the lifecycle state of a payment intent.
//
// Transitions are monotonic: pending may move to any of the other three
// states, and approved/rejected/expired are absorbing.
type IntentStatus string

const (
	IntentStatusPending  IntentStatus = "pending"
	IntentStatusApproved IntentStatus = "approved"
	IntentStatusRejected IntentStatus = "rejected"
	IntentStatusExpired  IntentStatus = "expired"
)

// Terminal reports whether no further transition is permitted from s.
func (s IntentStatus) Terminal() bool {
	switch s {
	case IntentStatusApproved, IntentStatusRejected, IntentStatusExpired:
		return true
	}
	return false
}

// GatewayReference is the opaque payload handed back by the payment gateway
// at charge creation. Everything the payer needs to complete the PIX payment.
//
//   - Code is the EMV copy-and-paste payload.
//   - QRBase64 is the rendered QR image.
//   - CorrelationToken is the gateway-assigned identifier for the charge.
//   - Raw keeps the original gateway response (JSON) for traceability/audit.
type GatewayReference struct {
	Code             string          `json:"code"`
	QRBase64         string          `json:"qr_base64"`
	CorrelationToken string          `json:"correlation_token"`
	Raw              json.RawMessage `json:"raw,omitempty"`
}

// PaymentIntent is one requested payment and its current state.
//
// All fields except Status and ApprovedAt are immutable after creation.
// Mutation happens only through the repository's compare-and-transition
// primitive, driven by the intent use case.
type PaymentIntent struct {
	ID            string           `json:"id"`
	Amount        float64          `json:"amount"`
	PayerEmail    string           `json:"payer_email"`
	PayerName     string           `json:"payer_name,omitempty"`
	PayerDocument string           `json:"payer_document,omitempty"`
	Status        IntentStatus     `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	ExpiresAt     time.Time        `json:"expires_at"`
	ApprovedAt    *time.Time       `json:"approved_at,omitempty"`
	Gateway       GatewayReference `json:"gateway_reference"`
}

// ExpiredBy reports whether the intent's deadline has passed at the given
// instant. It says nothing about Status; an approved intent stays approved.
func (p PaymentIntent) ExpiredBy(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
