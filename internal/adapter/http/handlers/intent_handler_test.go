package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"govbr_pagamentos/internal/adapter/http/handlers/mocks"
	"govbr_pagamentos/internal/domain/entities"
	"govbr_pagamentos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestIntentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IIntentUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/pix", NewIntentHandler(uc).CreateIntent)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIIntentUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIIntentUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_AMOUNT" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIIntentUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10.5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_EMAIL" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).Return(entities.PaymentIntent{}, usecase.ErrPixGatewayFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"amount":10.5,"email":"a@b.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success with legacy aliases", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntentUseCase(ctrl)
		r := newRouter(uc)

		now := time.Now().UTC()
		uc.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateIntentCommand) (entities.PaymentIntent, error) {
				if cmd.Amount != 10.5 || cmd.PayerEmail != "a@b.com" || cmd.PayerName != "Cliente" || cmd.PayerDocument != "12345678900" {
					t.Fatalf("aliases not resolved: %+v", cmd)
				}
				return entities.PaymentIntent{
					ID:         "PAY0000000000001",
					Amount:     cmd.Amount,
					PayerEmail: cmd.PayerEmail,
					Status:     entities.IntentStatusPending,
					CreatedAt:  now,
					ExpiresAt:  now.Add(15 * time.Minute),
					Gateway:    entities.GatewayReference{Code: "emv", QRBase64: "img", CorrelationToken: "tok"},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/pix", bytes.NewBufferString(`{"valor":10.5,"email":"a@b.com","nome":"Cliente","cpf":"12345678900"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "PAY0000000000001" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["pix_code"] != "emv" || body["qr_code"] != "emv" {
			t.Fatalf("expected alias code fields, got: %s", w.Body.String())
		}
	})
}

func TestIntentHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IIntentUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/pix/:payment_id", NewIntentHandler(uc).GetStatus)
		return r
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntentUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetStatus(gomock.Any(), "NOPE").Return(entities.PaymentIntent{}, usecase.ErrIntentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/NOPE", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIntentUseCase(ctrl)
		r := newRouter(uc)

		now := time.Now().UTC()
		at := now.Add(time.Minute)
		uc.EXPECT().GetStatus(gomock.Any(), "PAY0000000000001").Return(entities.PaymentIntent{
			ID:         "PAY0000000000001",
			Amount:     10.5,
			Status:     entities.IntentStatusApproved,
			CreatedAt:  now,
			ExpiresAt:  now.Add(15 * time.Minute),
			ApprovedAt: &at,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/pix/PAY0000000000001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "approved" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		details, _ := body["payment_details"].(map[string]any)
		if details["id"] != "PAY0000000000001" || details["approved_at"] == nil {
			t.Fatalf("unexpected details: %s", w.Body.String())
		}
	})
}

func TestMapIntentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrMissingPayerEmail, http.StatusBadRequest},
		{usecase.ErrIntentNotFound, http.StatusNotFound},
		{usecase.ErrPixGatewayFailed, http.StatusBadGateway},
		{usecase.ErrIntentIDExhausted, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapIntentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
