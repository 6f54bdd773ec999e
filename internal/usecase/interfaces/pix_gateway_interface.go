package interfaces

import (
	"context"

	"govbr_pagamentos/internal/domain/entities"
)

// ChargeRequest carries everything a gateway needs to create a PIX charge.
// PaymentID is our identifier; gateways embed it as the external reference.
type ChargeRequest struct {
	PaymentID     string
	Amount        float64
	PayerEmail    string
	PayerName     string
	PayerDocument string
}

// IPixGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreateCharge may block for a non-trivial duration (network latency); the
// use case invokes it before inserting the record and never while holding
// any store resource. A gateway error aborts intent creation entirely.
type IPixGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (entities.GatewayReference, error)
}
