package interfaces

import (
	"time"

	"govbr_pagamentos/internal/domain/entities"
)

// IReconciliationPolicy decides whether a pending intent observed by a poll
// should move to a terminal state.
//
// Reconcile returns the status the intent should transition to, or
// IntentStatusPending when no transition applies. It only ever sees pending,
// non-expired intents; expiration is enforced by the use case before the
// policy runs. A production deployment swaps the simulated policy for real
// gateway verification without touching the state machine.
type IReconciliationPolicy interface {
	Reconcile(p entities.PaymentIntent, now time.Time) entities.IntentStatus
}
