package handlers

import (
	"errors"
	"log"
	"net/http"

	request "govbr_pagamentos/internal/adapter/http/dto/request"
	response "govbr_pagamentos/internal/adapter/http/dto/response"
	"govbr_pagamentos/internal/usecase"
	"govbr_pagamentos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIntentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// IntentHandler handles HTTP requests for PIX payment intents.
type IntentHandler struct {
	usecase usecase.IIntentUseCase
}

func NewIntentHandler(uc usecase.IIntentUseCase) *IntentHandler {
	return &IntentHandler{usecase: uc}
}

// CreateIntent creates a PIX charge and returns the rendering data.
//
//	@Summary	Create a PIX payment intent
//	@Tags		pix
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.CreateIntentRequest	true	"charge parameters"
//	@Success	200		{object}	response.IntentResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	502		{object}	pkg.HTTPError
//	@Router		/pix [post]
func (h *IntentHandler) CreateIntent(c *gin.Context) {
	var payload request.CreateIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[pix][handler] invalid create payload err=%v", err)
		c.JSON(errInvalidIntentPayload.HTTPStatus, errInvalidIntentPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	email, err := payload.ResolveEmail()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_EMAIL", "Email is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateIntent(c.Request.Context(), usecase.CreateIntentCommand{
		Amount:        amount,
		PayerEmail:    email,
		PayerName:     payload.ResolveName(),
		PayerDocument: payload.ResolveDocument(),
	})
	if err != nil {
		log.Printf("[pix][handler] create failed err=%v", err)
		appErr := mapIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[pix][handler] create success payment_id=%s", created.ID)

	c.JSON(http.StatusOK, response.FromPaymentIntent(created))
}

// GetStatus returns the current (reconciled) state of an intent.
//
//	@Summary	Poll a payment intent's status
//	@Tags		pix
//	@Produce	json
//	@Param		payment_id	path		string	true	"payment intent id"
//	@Success	200			{object}	response.StatusResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/pix/{payment_id} [get]
func (h *IntentHandler) GetStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")

	p, err := h.usecase.GetStatus(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[pix][handler] status failed payment_id=%s err=%v", paymentID, err)
		appErr := mapIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StatusFromPaymentIntent(p))
}

func mapIntentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPayerEmail):
		return pkg.NewDomainErrorSimple("MISSING_EMAIL", "Email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIntentNotFound):
		return pkg.NewDomainErrorSimple("INTENT_NOT_FOUND", "Payment intent not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPixGatewayFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable, retry later", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
