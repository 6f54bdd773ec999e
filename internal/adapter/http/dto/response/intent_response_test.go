package response

import (
	"testing"
	"time"

	"govbr_pagamentos/internal/domain/entities"
)

func TestFromPaymentIntent(t *testing.T) {
	now := time.Now().UTC()
	at := now.Add(time.Minute)
	p := entities.PaymentIntent{
		ID:         "PAY0000000000001",
		Amount:     10.5,
		PayerEmail: "a@b.com",
		Status:     entities.IntentStatusApproved,
		CreatedAt:  now,
		ExpiresAt:  now.Add(15 * time.Minute),
		ApprovedAt: &at,
		Gateway:    entities.GatewayReference{Code: "emv", QRBase64: "img", CorrelationToken: "tok"},
	}

	res := FromPaymentIntent(p)
	if res.ID != "PAY0000000000001" || res.PaymentID != "PAY0000000000001" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "approved" || res.Amount != 10.5 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.QRCode != "emv" || res.PixCode != "emv" || res.QRBase64 != "img" {
		t.Fatalf("unexpected code fields: %+v", res)
	}
	if !res.Expiration.Equal(p.ExpiresAt) || !res.ExpiresAt.Equal(p.ExpiresAt) {
		t.Fatalf("unexpected expiration fields: %+v", res)
	}
	if res.ApprovedAt == nil || !res.ApprovedAt.Equal(at) {
		t.Fatalf("unexpected approved_at: %+v", res.ApprovedAt)
	}
}

func TestStatusFromPaymentIntent(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PaymentIntent{
		ID:        "PAY0000000000002",
		Amount:    3,
		Status:    entities.IntentStatusPending,
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}

	res := StatusFromPaymentIntent(p)
	if res.Status != "pending" || res.PaymentDetails.ID != p.ID {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.PaymentDetails.Status != "pending" || res.PaymentDetails.Amount != 3 {
		t.Fatalf("unexpected details: %+v", res.PaymentDetails)
	}
	if res.PaymentDetails.ApprovedAt != nil {
		t.Fatalf("pending intent must not carry approved_at")
	}
}
