package payments

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"govbr_pagamentos/internal/usecase/interfaces"
)

func TestSimulatedGateway_CreateCharge(t *testing.T) {
	g := NewSimulatedGateway(0)

	ref, err := g.CreateCharge(context.Background(), interfaces.ChargeRequest{
		PaymentID:  "PAY0000000000001",
		Amount:     10.5,
		PayerEmail: "a@b.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(ref.Code, "PAY0000000000001") {
		t.Fatalf("code must embed the payment id: %s", ref.Code)
	}
	if !strings.Contains(ref.Code, "10.50") {
		t.Fatalf("code must embed the formatted amount: %s", ref.Code)
	}
	if !strings.Contains(ref.Code, "BR.GOV.BCB.PIX") {
		t.Fatalf("code must carry the PIX arrangement identifier: %s", ref.Code)
	}
	if ref.QRBase64 == "" || ref.CorrelationToken == "" {
		t.Fatalf("incomplete reference: %+v", ref)
	}

	var raw map[string]any
	if err := json.Unmarshal(ref.Raw, &raw); err != nil {
		t.Fatalf("raw payload must be json: %v", err)
	}
	if raw["payment_id"] != "PAY0000000000001" || raw["status"] != "pending" {
		t.Fatalf("unexpected raw payload: %v", raw)
	}
}

func TestSimulatedGateway_LatencyCancellation(t *testing.T) {
	g := NewSimulatedGateway(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.CreateCharge(ctx, interfaces.ChargeRequest{PaymentID: "PAY0000000000002", Amount: 1, PayerEmail: "a@b.com"})
	if err == nil {
		t.Fatalf("expected context cancellation error")
	}
}
