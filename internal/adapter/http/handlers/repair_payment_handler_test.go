package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"techmend/internal/adapter/http/handlers/mocks"
	"techmend/internal/domain/entities"
	"techmend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRepairPaymentHandler_CreatePayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway rejection maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairPaymentUseCase(ctrl)
		h := NewRepairPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:number", h.CreatePayment)

		uc.EXPECT().CreateAndApprove(gomock.Any(), gomock.Any(), "MNT-2026-0001", gomock.Any()).
			Return(entities.RepairPayment{}, usecase.ErrPaymentGatewayBadRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/MNT-2026-0001", bytes.NewBufferString(`{"token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("not payable maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairPaymentUseCase(ctrl)
		h := NewRepairPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:number", h.CreatePayment)

		uc.EXPECT().CreateAndApprove(gomock.Any(), gomock.Any(), "MNT-2026-0001", gomock.Any()).
			Return(entities.RepairPayment{}, usecase.ErrRequestNotPayable)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/MNT-2026-0001", bytes.NewBufferString(`{"token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRepairPaymentUseCase(ctrl)
		h := NewRepairPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:number", h.CreatePayment)

		uc.EXPECT().CreateAndApprove(gomock.Any(), gomock.Any(), "MNT-2026-0001", gomock.Any()).
			Return(entities.RepairPayment{
				ID:            "pay-1",
				RequestNumber: "MNT-2026-0001",
				Amount:        165,
				Date:          time.Now().UTC(),
				Status:        entities.GatewayPaymentApproved,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/MNT-2026-0001", bytes.NewBufferString(`{"token":"tok"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "pay-1" || body["amount"] != 165.0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestRepairPaymentHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRepairPaymentUseCase(ctrl)
	h := NewRepairPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:number", h.ListPayments)

	uc.EXPECT().ListByRequestNumber(gomock.Any(), "MNT-2026-0001").
		Return([]entities.RepairPayment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/MNT-2026-0001", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(body))
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrRequestNotFound, http.StatusNotFound},
		{usecase.ErrAccessDenied, http.StatusForbidden},
		{usecase.ErrRequestNotPayable, http.StatusConflict},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusPaymentRequired},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapPaymentError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("mapping %v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
