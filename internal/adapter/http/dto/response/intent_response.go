package response

import (
	"time"

	"govbr_pagamentos/internal/domain/entities"
)

// IntentResponse is the full intent representation returned on creation.
//
// PixCode/QRCode and Expiration/ExpiresAt carry the same values; the legacy
// checkout page reads the older names and newer clients read the canonical
// ones.
type IntentResponse struct {
	PaymentID  string     `json:"payment_id"`
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Amount     float64    `json:"amount"`
	QRCode     string     `json:"qr_code"`
	PixCode    string     `json:"pix_code"`
	QRBase64   string     `json:"qr_base64"`
	Expiration time.Time  `json:"expiration"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`

	CorrelationToken string `json:"correlation_token,omitempty"`
}

func FromPaymentIntent(p entities.PaymentIntent) IntentResponse {
	return IntentResponse{
		PaymentID:        p.ID,
		ID:               p.ID,
		Status:           string(p.Status),
		Amount:           p.Amount,
		QRCode:           p.Gateway.Code,
		PixCode:          p.Gateway.Code,
		QRBase64:         p.Gateway.QRBase64,
		Expiration:       p.ExpiresAt,
		ExpiresAt:        p.ExpiresAt,
		CreatedAt:        p.CreatedAt,
		ApprovedAt:       p.ApprovedAt,
		CorrelationToken: p.Gateway.CorrelationToken,
	}
}

// StatusResponse is the polling representation: status plus the details the
// checkout page renders while waiting.
type StatusResponse struct {
	Status         string        `json:"status"`
	PaymentDetails IntentDetails `json:"payment_details"`
}

type IntentDetails struct {
	ID         string     `json:"id"`
	Amount     float64    `json:"amount"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	Expiration time.Time  `json:"expiration"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

func StatusFromPaymentIntent(p entities.PaymentIntent) StatusResponse {
	return StatusResponse{
		Status: string(p.Status),
		PaymentDetails: IntentDetails{
			ID:         p.ID,
			Amount:     p.Amount,
			Status:     string(p.Status),
			CreatedAt:  p.CreatedAt,
			Expiration: p.ExpiresAt,
			ApprovedAt: p.ApprovedAt,
		},
	}
}
