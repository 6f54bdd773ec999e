package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Placeholder QR image returned while no real provider backs the service.
const simulatedQRBase64 = "iVBORw0KGgoAAAANSUhEUgAAAMgAAADIAQMAAABl5f1ZAAAAA1BMVEX///+nxBvIAAAACXBIWXMAAA7EAAAOxAGVKw4bAAAAFUlEQVRoge3BAQ0AAADCoPdPbQ43oAAAAAAuNhB5AAE0eBBxAAAAAElFTkSuQmCC"

// SimulatedGateway is a deterministic stand-in for a real PIX provider.
//
// It produces an EMV-style copy-and-paste payload embedding the payment id
// and amount, and sleeps for a configurable latency to mimic a network call.
// Used by default when no Mercado Pago access token is configured, and by
// tests that need a gateway without network access.
type SimulatedGateway struct {
	latency time.Duration
}

var _ interfaces.IPixGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{latency: latency}
}

func (g *SimulatedGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (entities.GatewayReference, error) {
	if g.latency > 0 {
		select {
		case <-time.After(g.latency):
		case <-ctx.Done():
			return entities.GatewayReference{}, ctx.Err()
		}
	}

	code := fmt.Sprintf(
		"00020126580014BR.GOV.BCB.PIX0136%s5204000053039865404%.2f5802BR5925GOVBR PAGAMENTOS6007BRASIL62260522%s6304",
		req.PaymentID, req.Amount, req.PaymentID,
	)
	token := uuid.NewString()

	raw, err := json.Marshal(map[string]any{
		"payment_id":         req.PaymentID,
		"correlation_token":  token,
		"transaction_amount": req.Amount,
		"payer_email":        req.PayerEmail,
		"qr_code":            code,
		"status":             "pending",
	})
	if err != nil {
		return entities.GatewayReference{}, err
	}

	log.Printf("[pix][gateway] simulated charge created payment_id=%s amount=%.2f", req.PaymentID, req.Amount)
	return entities.GatewayReference{
		Code:             code,
		QRBase64:         simulatedQRBase64,
		CorrelationToken: token,
		Raw:              raw,
	}, nil
}
