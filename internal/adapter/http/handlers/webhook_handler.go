package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	request "govbr_pagamentos/internal/adapter/http/dto/request"
	"govbr_pagamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives asynchronous gateway callbacks.
//
// Gateways deliver at-least-once and do not care about our internal state,
// so every syntactically-readable delivery is acknowledged with 200 even
// when the intent is unknown or the transition is a no-op. The lifecycle
// rules still hold internally: terminal intents are never changed.
type WebhookHandler struct {
	usecase usecase.IIntentUseCase
}

func NewWebhookHandler(uc usecase.IIntentUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// ReceiveMercadoPago applies a gateway status notification.
//
//	@Summary	Gateway payment notification
//	@Tags		webhooks
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.WebhookRequest	true	"notification"
//	@Success	200		{object}	map[string]bool
//	@Router		/webhooks/mercadopago [post]
func (h *WebhookHandler) ReceiveMercadoPago(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[pix][webhook] body read failed err=%v", err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var payload request.WebhookRequest
	if err := json.Unmarshal(raw, &payload); err != nil || payload.PaymentID == "" {
		log.Printf("[pix][webhook] unusable payload len=%d err=%v", len(raw), err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	payload.Raw = raw

	p, err := h.usecase.ApplyCallback(c.Request.Context(), payload.PaymentID, payload.Status)
	if err != nil {
		// Unknown intents included: ack so the gateway stops retrying.
		log.Printf("[pix][webhook] callback not applied payment_id=%s err=%v", payload.PaymentID, err)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	log.Printf("[pix][webhook] callback processed payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, gin.H{"received": true})
}
