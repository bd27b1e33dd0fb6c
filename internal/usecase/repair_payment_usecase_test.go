package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"
	mock_interfaces "techmend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRepairPaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"token":"tok","payment_method_id":"visa"}`)

	t.Run("access denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gate := mock_interfaces.NewMockIAccessGate(ctrl)
		gate.EXPECT().Authorize(gomock.Any(), interfaces.CapabilityRecordPayment).Return(interfaces.ErrAccessDenied)
		uc := NewRepairPaymentUseCase(nil, nil, gate, nil)

		_, err := uc.CreateAndApprove(context.Background(), techActor, "MNT-2026-0001", payload)
		if !errors.Is(err, ErrAccessDenied) {
			t.Fatalf("expected ErrAccessDenied, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gate := mock_interfaces.NewMockIAccessGate(ctrl)
		allowAll(gate)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewRepairPaymentUseCase(nil, nil, gate, gateway)

		_, err := uc.CreateAndApprove(context.Background(), adminActor, "MNT-2026-0001", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("request not payable before ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gate := mock_interfaces.NewMockIAccessGate(ctrl)
		allowAll(gate)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIMaintenanceRequestRepository(ctrl)
		uc := NewRepairPaymentUseCase(nil, requestRepo, gate, gateway)

		requestRepo.EXPECT().GetByNumber(gomock.Any(), "MNT-2026-0001").Return(entities.MaintenanceRequest{
			Number: "MNT-2026-0001",
			Status: entities.StatusRecord{Current: entities.StatusInProgress},
		}, nil)

		_, err := uc.CreateAndApprove(context.Background(), adminActor, "MNT-2026-0001", payload)
		if !errors.Is(err, ErrRequestNotPayable) {
			t.Fatalf("expected ErrRequestNotPayable, got %v", err)
		}
	})

	t.Run("charges the final total and marks the request paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gate := mock_interfaces.NewMockIAccessGate(ctrl)
		allowAll(gate)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIMaintenanceRequestRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIRepairPaymentRepository(ctrl)
		uc := NewRepairPaymentUseCase(paymentRepo, requestRepo, gate, gateway)

		requestRepo.EXPECT().GetByNumber(gomock.Any(), "MNT-2026-0001").Return(entities.MaintenanceRequest{
			Number: "MNT-2026-0001",
			Status: entities.StatusRecord{Current: entities.StatusReady},
			Cost:   entities.CostBreakdown{TotalEstimated: 140, TotalFinal: 165, PaymentStatus: entities.PaymentStatusPending},
		}, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(p, &body); err != nil {
					t.Fatalf("invalid gateway payload: %v", err)
				}
				if body["transaction_amount"] != 165.0 {
					t.Fatalf("expected amount 165, got %v", body["transaction_amount"])
				}
				if body["external_reference"] != "MNT-2026-0001" {
					t.Fatalf("expected external reference, got %v", body["external_reference"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
			},
		)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.RepairPayment) (entities.RepairPayment, error) {
				if p.ID != "pay-1" || p.Amount != 165 || p.Status != entities.GatewayPaymentApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		requestRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
				if r.Cost.PaymentStatus != entities.PaymentStatusPaid {
					t.Fatalf("expected request marked paid, got %s", r.Cost.PaymentStatus)
				}
				return r, nil
			},
		)

		created, err := uc.CreateAndApprove(context.Background(), adminActor, "MNT-2026-0001", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.RequestNumber != "MNT-2026-0001" {
			t.Fatalf("unexpected payment: %+v", created)
		}
	})

	t.Run("gateway rejection is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gate := mock_interfaces.NewMockIAccessGate(ctrl)
		allowAll(gate)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		requestRepo := mock_interfaces.NewMockIMaintenanceRequestRepository(ctrl)
		uc := NewRepairPaymentUseCase(nil, requestRepo, gate, gateway)

		requestRepo.EXPECT().GetByNumber(gomock.Any(), "MNT-2026-0001").Return(entities.MaintenanceRequest{
			Number: "MNT-2026-0001",
			Status: entities.StatusRecord{Current: entities.StatusReady},
			Cost:   entities.CostBreakdown{TotalFinal: 100},
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateAndApprove(context.Background(), adminActor, "MNT-2026-0001", payload)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestRepairPaymentUseCase_ListByRequestNumber(t *testing.T) {
	t.Run("empty number", func(t *testing.T) {
		uc := NewRepairPaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.ListByRequestNumber(context.Background(), "  "); !errors.Is(err, ErrInvalidRequestNumber) {
			t.Fatalf("expected ErrInvalidRequestNumber, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		paymentRepo := mock_interfaces.NewMockIRepairPaymentRepository(ctrl)
		uc := NewRepairPaymentUseCase(paymentRepo, nil, nil, nil)

		paymentRepo.EXPECT().ListByRequestNumber(gomock.Any(), "MNT-2026-0001").Return([]entities.RepairPayment{{ID: "pay-1"}}, nil)

		payments, err := uc.ListByRequestNumber(context.Background(), "MNT-2026-0001")
		if err != nil || len(payments) != 1 {
			t.Fatalf("unexpected result: %v %v", payments, err)
		}
	})
}
