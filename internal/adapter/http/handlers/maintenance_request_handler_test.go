package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"techmend/internal/adapter/http/handlers/mocks"
	"techmend/internal/domain/entities"
	"techmend/internal/usecase"
	"techmend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createBody = `{
	"customer": {"name": "Sara", "phone": "0501234567"},
	"device": {"brand": "Apple", "model": "iPhone 13", "serial_number": "SN-1"},
	"issue": {
		"category": "screen",
		"description": "cracked glass",
		"priority": "urgent",
		"images": [
			{"url": "http://img/1", "angle": "front"},
			{"url": "http://img/2", "angle": "back"},
			{"url": "http://img/3", "angle": "side"}
		]
	}
}`

func TestMaintenanceRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.MaintenanceRequest{}, &usecase.ValidationError{Group: "issue", Reason: "at least 3 images are required (front/back/side)"})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["code"] != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", body["code"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateRequestInput{})).DoAndReturn(
			func(_ context.Context, _ entities.Actor, input usecase.CreateRequestInput) (entities.MaintenanceRequest, error) {
				if input.Customer.Name != "Sara" || input.Issue.Priority != entities.PriorityUrgent {
					t.Fatalf("unexpected input: %+v", input)
				}
				if len(input.Issue.Images) != 3 {
					t.Fatalf("expected 3 images, got %d", len(input.Issue.Images))
				}
				return entities.MaintenanceRequest{
					Number: "MNT-2026-0001",
					Status: entities.StatusRecord{Current: entities.StatusReceived},
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["number"] != "MNT-2026-0001" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestMaintenanceRequestHandler_GetRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:number", h.GetRequest)

		uc.EXPECT().GetByNumber(gomock.Any(), "MNT-2026-9999").Return(entities.MaintenanceRequest{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/MNT-2026-9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:number", h.GetRequest)

		uc.EXPECT().GetByNumber(gomock.Any(), "MNT-2026-0001").Return(entities.MaintenanceRequest{Number: "MNT-2026-0001"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/MNT-2026-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMaintenanceRequestHandler_ListRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
	h := NewMaintenanceRequestHandler(uc)

	r := gin.New()
	r.GET("/v1/requests", h.ListRequests)

	uc.EXPECT().List(gomock.Any(), interfaces.ListFilter{
		Status:   entities.StatusReceived,
		Priority: entities.PriorityUrgent,
		Query:    "sara",
		Limit:    10,
		Cursor:   "MNT-2026-0005",
	}).Return([]entities.MaintenanceRequest{{Number: "MNT-2026-0006"}}, "MNT-2026-0006", nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/requests?status=received&priority=urgent&q=sara&limit=10&cursor=MNT-2026-0005", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["next_cursor"] != "MNT-2026-0006" {
		t.Fatalf("unexpected cursor: %v", body["next_cursor"])
	}
}

func TestMaintenanceRequestHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:number/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "MNT-2026-0001", entities.StatusCompleted, "").
			Return(entities.MaintenanceRequest{}, usecase.ErrIllegalTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/MNT-2026-0001/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent update maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:number/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "MNT-2026-0001", entities.StatusDiagnosed, "").
			Return(entities.MaintenanceRequest{}, usecase.ErrConcurrentUpdate)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/MNT-2026-0001/status", bytes.NewBufferString(`{"status":"diagnosed"}`))
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
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:number/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "MNT-2026-0001", entities.StatusDiagnosed, "screen cracked").
			Return(entities.MaintenanceRequest{Number: "MNT-2026-0001", Status: entities.StatusRecord{Current: entities.StatusDiagnosed}}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/MNT-2026-0001/status", bytes.NewBufferString(`{"status":"diagnosed","note":"screen cracked"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMaintenanceRequestHandler_UpdateShipping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("shipping not required maps to 412", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.PATCH("/v1/requests/:number/shipping", h.UpdateShipping)

		uc.EXPECT().UpdateShipping(gomock.Any(), gomock.Any(), "MNT-2026-0001", gomock.Any()).
			Return(entities.MaintenanceRequest{}, usecase.ErrShippingNotRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/MNT-2026-0001/shipping", bytes.NewBufferString(`{"status":"picked_up"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPreconditionFailed {
			t.Fatalf("expected 412, got %d", w.Code)
		}
	})
}

func TestMaintenanceRequestHandler_DeleteRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("customer-sourced maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.DELETE("/v1/requests/:number", h.DeleteRequest)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "MNT-2026-0001").Return(usecase.ErrRequestNotDeletable)

		req := httptest.NewRequest(http.MethodDelete, "/v1/requests/MNT-2026-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaintenanceRequestUseCase(ctrl)
		h := NewMaintenanceRequestHandler(uc)

		r := gin.New()
		r.DELETE("/v1/requests/:number", h.DeleteRequest)

		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "MNT-2026-0002").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/requests/MNT-2026-0002", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapMaintenanceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{&usecase.ValidationError{Group: "device", Reason: "model required"}, http.StatusBadRequest},
		{usecase.ErrRequestNotFound, http.StatusNotFound},
		{usecase.ErrAccessDenied, http.StatusForbidden},
		{usecase.ErrIllegalTransition, http.StatusConflict},
		{usecase.ErrShippingNotRequired, http.StatusPreconditionFailed},
		{usecase.ErrIdentityCollision, http.StatusConflict},
		{usecase.ErrConcurrentUpdate, http.StatusConflict},
		{usecase.ErrRequestNotDeletable, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapMaintenanceError(tc.err); got.HTTPStatus != tc.status {
			t.Fatalf("mapping %v: expected %d, got %d", tc.err, tc.status, got.HTTPStatus)
		}
	}
}
