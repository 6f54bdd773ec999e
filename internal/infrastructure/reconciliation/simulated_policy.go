package reconciliation

import (
	"math/rand"
	"time"

	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase/interfaces"
)

// Parameters of the original simulator: 20% approval chance per observation
// once 5 seconds have passed since creation. Kept for behavioral fidelity.
const (
	DefaultDwell        = 5 * time.Second
	DefaultApprovalRate = 0.2
)

// SimulatedReconciliationPolicy approves pending intents probabilistically.
//
// Simulation-only: it models a gateway that has not yet delivered a webhook
// while the client keeps polling. Production deployments replace it with
// real gateway verification; the state machine does not change. A zero
// approval rate disables it entirely.
type SimulatedReconciliationPolicy struct {
	dwell        time.Duration
	approvalRate float64
}

var _ interfaces.IReconciliationPolicy = (*SimulatedReconciliationPolicy)(nil)

func NewSimulatedReconciliationPolicy(dwell time.Duration, approvalRate float64) *SimulatedReconciliationPolicy {
	return &SimulatedReconciliationPolicy{dwell: dwell, approvalRate: approvalRate}
}

func (p *SimulatedReconciliationPolicy) Reconcile(intent entities.PaymentIntent, now time.Time) entities.IntentStatus {
	if now.Sub(intent.CreatedAt) <= p.dwell {
		return entities.IntentStatusPending
	}
	if p.approvalRate > 0 && rand.Float64() < p.approvalRate {
		return entities.IntentStatusApproved
	}
	return entities.IntentStatusPending
}
