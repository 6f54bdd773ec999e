package handlers

import (
	"log"
	"net/http"
	"time"

	"govbr_pagamentos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	usecase usecase.IIntentUseCase
}

func NewHealthHandler(uc usecase.IIntentUseCase) *HealthHandler {
	return &HealthHandler{usecase: uc}
}

// Check reports service liveness and whether the store has seen any intent.
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]any
//	@Router		/health-check [get]
func (h *HealthHandler) Check(c *gin.Context) {
	nonEmpty, err := h.usecase.HealthCheck(c.Request.Context())
	if err != nil {
		log.Printf("[pix][health] store check failed err=%v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "online",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
		"store_non_empty": nonEmpty,
	})
}
