package reconciliation

import (
	"testing"
	"time"

	"govbr_pagamentos/internal/domain/entities"
)

func pending(createdAt time.Time) entities.PaymentIntent {
	return entities.PaymentIntent{
		ID:        "PAY0000000000001",
		Status:    entities.IntentStatusPending,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(15 * time.Minute),
	}
}

func TestSimulatedReconciliationPolicy_DwellNotElapsed(t *testing.T) {
	p := NewSimulatedReconciliationPolicy(5*time.Second, 1)
	now := time.Now().UTC()

	if got := p.Reconcile(pending(now), now); got != entities.IntentStatusPending {
		t.Fatalf("expected pending before dwell, got %s", got)
	}
	if got := p.Reconcile(pending(now.Add(-5*time.Second)), now); got != entities.IntentStatusPending {
		t.Fatalf("dwell boundary must stay pending, got %s", got)
	}
}

func TestSimulatedReconciliationPolicy_CertainApproval(t *testing.T) {
	p := NewSimulatedReconciliationPolicy(5*time.Second, 1)
	now := time.Now().UTC()

	if got := p.Reconcile(pending(now.Add(-6*time.Second)), now); got != entities.IntentStatusApproved {
		t.Fatalf("rate 1 past dwell must approve, got %s", got)
	}
}

func TestSimulatedReconciliationPolicy_Disabled(t *testing.T) {
	p := NewSimulatedReconciliationPolicy(0, 0)
	now := time.Now().UTC()

	for i := 0; i < 100; i++ {
		if got := p.Reconcile(pending(now.Add(-time.Hour)), now); got != entities.IntentStatusPending {
			t.Fatalf("rate 0 must never approve, got %s", got)
		}
	}
}
