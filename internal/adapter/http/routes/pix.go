package routes

import (
	"govbr_pagamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPix      = "/pix"
	PathWebhooks = "/webhooks"
)

func addPixRoutes(rg *gin.RouterGroup, intentHandler *handlers.IntentHandler, webhookHandler *handlers.WebhookHandler, healthHandler *handlers.HealthHandler) {
	pix := rg.Group(PathPix)
	{
		pix.POST("", intentHandler.CreateIntent)
		pix.GET("/:payment_id", intentHandler.GetStatus)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.ReceiveMercadoPago)
	}

	rg.GET("/health-check", healthHandler.Check)
}
