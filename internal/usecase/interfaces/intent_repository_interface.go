package interfaces

import (
	"context"
	"errors"

	"govbr_pagamentos/internal/domain/entities"
)

var (
	// ErrDuplicateIntentID is returned by Put when the id already exists.
	ErrDuplicateIntentID = errors.New("duplicate payment intent id")
)

// IntentMutator adjusts the non-status fields of an intent inside a
// compare-and-transition. Runs only when the transition is applied.
type IntentMutator func(*entities.PaymentIntent)

// IIntentRepository abstracts persistence for PaymentIntent.
//
// Contract notes (shared by the in-memory and DynamoDB implementations):
//   - GetByID returns a zero-value intent when the id is unknown.
//   - All single-record operations are atomic with respect to concurrent
//     callers; there are no cross-record transactions.
//   - CompareAndTransition is the single serialization point for status
//     changes: if the current status equals expected, it applies mutate
//     (may be nil) and sets the status to next, returning the updated
//     record. Otherwise it is a no-op and returns the current record with
//     no error, so concurrent poll/callback races resolve to exactly one
//     effective transition.
type IIntentRepository interface {
	Put(ctx context.Context, p entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	CompareAndTransition(ctx context.Context, id string, expected, next entities.IntentStatus, mutate IntentMutator) (entities.PaymentIntent, error)
	Count(ctx context.Context) (int, error)
}
