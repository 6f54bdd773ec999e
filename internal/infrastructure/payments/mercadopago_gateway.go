package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates real PIX charges through the Mercado Pago SDK.
//
// The request is assembled as raw JSON and unmarshalled into the SDK request
// type, and the response is re-marshalled before field extraction, because
// different MP integrations vary in schema and we keep the full payload for
// traceability.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPixGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[pix][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[pix][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[pix][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// mpPixResponse pulls the PIX rendering data out of the provider response.
// Tag names follow the Mercado Pago payments API.
type mpPixResponse struct {
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (entities.GatewayReference, error) {
	if g == nil || g.client == nil {
		log.Printf("[pix][gateway] gateway not configured")
		return entities.GatewayReference{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[pix][gateway] create start payment_id=%s amount=%.2f", req.PaymentID, req.Amount)

	body := map[string]any{
		"transaction_amount": req.Amount,
		"payment_method_id":  "pix",
		"description":        fmt.Sprintf("Pagamento %s", req.PaymentID),
		"external_reference": req.PaymentID,
		"payer": map[string]any{
			"email":      req.PayerEmail,
			"first_name": req.PayerName,
		},
	}
	if doc := strings.TrimSpace(req.PayerDocument); doc != "" {
		payer := body["payer"].(map[string]any)
		payer["identification"] = map[string]any{"type": "CPF", "number": doc}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return entities.GatewayReference{}, err
	}
	var sdkReq payment.Request
	if err := json.Unmarshal(raw, &sdkReq); err != nil {
		log.Printf("[pix][gateway] request unmarshal failed payment_id=%s err=%v", req.PaymentID, err)
		return entities.GatewayReference{}, err
	}

	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[pix][gateway] sdk create failed payment_id=%s err=%v", req.PaymentID, err)
		return entities.GatewayReference{}, err
	}

	respRaw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[pix][gateway] response marshal failed payment_id=%s err=%v", req.PaymentID, err)
		return entities.GatewayReference{}, err
	}

	var pix mpPixResponse
	if err := json.Unmarshal(respRaw, &pix); err != nil {
		log.Printf("[pix][gateway] response parse failed payment_id=%s err=%v", req.PaymentID, err)
	}
	log.Printf("[pix][gateway] create success payment_id=%s provider_payment_id=%d provider_status=%s", req.PaymentID, resp.ID, resp.Status)

	return entities.GatewayReference{
		Code:             pix.PointOfInteraction.TransactionData.QRCode,
		QRBase64:         pix.PointOfInteraction.TransactionData.QRCodeBase64,
		CorrelationToken: fmt.Sprintf("%d", resp.ID),
		Raw:              respRaw,
	}, nil
}
