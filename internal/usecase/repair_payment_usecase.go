package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"
)

var (
	ErrRepairPaymentNotFound      = errors.New("repair payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrRequestNotPayable          = errors.New("request is not ready for payment")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IRepairPaymentUseCase records a gateway payment against a request and marks
// the request paid. The gateway result is persisted; capture/settlement is
// the provider's business.
type IRepairPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, actor entities.Actor, requestNumber string, payload json.RawMessage) (entities.RepairPayment, error)
	ListByRequestNumber(ctx context.Context, requestNumber string) ([]entities.RepairPayment, error)
}

type RepairPaymentUseCase struct {
	repo        interfaces.IRepairPaymentRepository
	requestRepo interfaces.IMaintenanceRequestRepository
	gate        interfaces.IAccessGate
	gateway     interfaces.IPaymentGateway

	now func() time.Time
}

var _ IRepairPaymentUseCase = (*RepairPaymentUseCase)(nil)

func NewRepairPaymentUseCase(
	repo interfaces.IRepairPaymentRepository,
	requestRepo interfaces.IMaintenanceRequestRepository,
	gate interfaces.IAccessGate,
	gateway interfaces.IPaymentGateway,
) *RepairPaymentUseCase {
	return &RepairPaymentUseCase{
		repo:        repo,
		requestRepo: requestRepo,
		gate:        gate,
		gateway:     gateway,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *RepairPaymentUseCase) CreateAndApprove(ctx context.Context, actor entities.Actor, requestNumber string, payload json.RawMessage) (entities.RepairPayment, error) {
	if err := u.gate.Authorize(actor, interfaces.CapabilityRecordPayment); err != nil {
		return entities.RepairPayment{}, fmt.Errorf("%w: %s", ErrAccessDenied, interfaces.CapabilityRecordPayment)
	}

	requestNumber = strings.TrimSpace(requestNumber)
	if requestNumber == "" {
		return entities.RepairPayment{}, ErrInvalidRequestNumber
	}
	mockMode := isPaymentGatewayMockEnabled()
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return entities.RepairPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.RepairPayment{}, errors.New("payment gateway not configured")
	}

	req, err := u.requestRepo.GetByNumber(ctx, requestNumber)
	if err != nil {
		return entities.RepairPayment{}, err
	}
	if req.Number == "" {
		return entities.RepairPayment{}, ErrRequestNotFound
	}
	if !mockMode && req.Status.Current != entities.StatusReady && req.Status.Current != entities.StatusCompleted {
		log.Printf("[payment][usecase] request not payable number=%s status=%s", req.Number, req.Status.Current)
		return entities.RepairPayment{}, ErrRequestNotPayable
	}

	amount := req.Cost.TotalFinal
	if amount == 0 {
		amount = req.Cost.TotalEstimated
	}

	// The amount charged is always the one the aggregate carries; the
	// request number rides along as external_reference for reconciliation.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = req.Number
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Repair %s", req.Number)
		}
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[payment][usecase] calling payment gateway number=%s amount=%.2f", req.Number, amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed number=%s err=%v", req.Number, err)
		if isGatewayUnauthorized(err) {
			return entities.RepairPayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.RepairPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.RepairPayment{}, err
	}
	log.Printf("[payment][usecase] gateway success number=%s provider_payment_id=%s provider_status=%s", req.Number, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed number=%s err=%v", req.Number, err)
	}

	payment := entities.RepairPayment{
		ID:            providerPaymentID,
		RequestNumber: req.Number,
		Amount:        amount,
		Date:          u.now(),
		Status:        entities.GatewayPaymentApproved,
		PayloadRaw:    providerResp,
		Payload:       parsed,
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		return entities.RepairPayment{}, err
	}

	req.Cost.PaymentStatus = entities.PaymentStatusPaid
	req.RecalculateCost()
	req.UpdatedAt = u.now()
	if _, err := u.requestRepo.Save(ctx, req); err != nil {
		log.Printf("[payment][usecase] marking request paid failed number=%s payment_id=%s err=%v", req.Number, created.ID, err)
		return entities.RepairPayment{}, err
	}

	return created, nil
}

func (u *RepairPaymentUseCase) ListByRequestNumber(ctx context.Context, requestNumber string) ([]entities.RepairPayment, error) {
	requestNumber = strings.TrimSpace(requestNumber)
	if requestNumber == "" {
		return nil, ErrInvalidRequestNumber
	}
	return u.repo.ListByRequestNumber(ctx, requestNumber)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
