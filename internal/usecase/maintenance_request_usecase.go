package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"techmend/internal/domain/entities"
	"techmend/internal/observability"
	"techmend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound      = errors.New("maintenance request not found")
	ErrInvalidRequestNumber = errors.New("invalid request number")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidDecision      = errors.New("invalid approval decision")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrIllegalTransition    = entities.ErrIllegalTransition
	ErrAccessDenied         = interfaces.ErrAccessDenied
	ErrShippingNotRequired  = errors.New("request does not require shipping")
	ErrIdentityCollision    = errors.New("request number collision")
	ErrConcurrentUpdate     = errors.New("request was modified concurrently")
	ErrRequestNotDeletable  = errors.New("customer-sourced requests cannot be deleted")
)

// ValidationError reports a missing or malformed intake field group. The
// operation that raised it performed no writes.
type ValidationError struct {
	Group  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Group, e.Reason)
}

// identityAttempts bounds retries when concurrent intakes race on a sequence.
const identityAttempts = 3

type CreateShippingInput struct {
	Required        bool
	ProviderHint    string
	Cost            float64
	PickupAddress   string
	DeliveryAddress string
}

type IssueImageInput struct {
	URL   string
	Angle string
}

type CreateIssueInput struct {
	Category    string
	Description string
	Priority    entities.Priority
	Images      []IssueImageInput
	Symptoms    []string
}

type CreateRequestInput struct {
	Source   entities.RequestSource
	Customer entities.CustomerSnapshot
	Device   entities.DeviceSnapshot
	Issue    CreateIssueInput
	Shipping CreateShippingInput
}

type DiagnosisInput struct {
	RootCause      string
	RecommendedFix string
	RequiredParts  []entities.RequiredPart
	Repairable     bool
	EstimatedHours float64
	LaborCost      float64
	Note           string
}

type ApprovalInput struct {
	Decision      entities.ApprovalDecision
	CustomerNotes string
	Channel       string
	// TargetStatus is the lifecycle status the caller wants the decision to
	// transition to. Decoupling it from the decision lets the same gate be
	// reused at different points of the workflow.
	TargetStatus entities.RequestStatus
	Note         string
}

type ShippingUpdateInput struct {
	Status         entities.ShippingStatus
	TrackingNumber string
	Notes          string
}

type TechnicianInput struct {
	ID             string
	Name           string
	Specialization string
}

// IMaintenanceRequestUseCase exposes the request lifecycle operations.
type IMaintenanceRequestUseCase interface {
	CreateRequest(ctx context.Context, actor entities.Actor, input CreateRequestInput) (entities.MaintenanceRequest, error)
	GetByNumber(ctx context.Context, number string) (entities.MaintenanceRequest, error)
	List(ctx context.Context, filter interfaces.ListFilter) ([]entities.MaintenanceRequest, string, error)
	AddDiagnosis(ctx context.Context, actor entities.Actor, number string, input DiagnosisInput) (entities.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, number string, newStatus entities.RequestStatus, note string) (entities.MaintenanceRequest, error)
	RecordApproval(ctx context.Context, actor entities.Actor, number string, input ApprovalInput) (entities.MaintenanceRequest, error)
	UpdatePaymentStatus(ctx context.Context, actor entities.Actor, number string, status entities.PaymentStatus) (entities.MaintenanceRequest, error)
	UpdateShipping(ctx context.Context, actor entities.Actor, number string, input ShippingUpdateInput) (entities.MaintenanceRequest, error)
	AssignTechnician(ctx context.Context, actor entities.Actor, number string, input TechnicianInput) (entities.MaintenanceRequest, error)
	Delete(ctx context.Context, actor entities.Actor, number string) error
}

type MaintenanceRequestUseCase struct {
	repo    interfaces.IMaintenanceRequestRepository
	counter interfaces.ISequenceCounter
	gate    interfaces.IAccessGate
	carrier interfaces.IShippingCarrierClient

	now func() time.Time
}

var _ IMaintenanceRequestUseCase = (*MaintenanceRequestUseCase)(nil)

func NewMaintenanceRequestUseCase(
	repo interfaces.IMaintenanceRequestRepository,
	counter interfaces.ISequenceCounter,
	gate interfaces.IAccessGate,
	carrier interfaces.IShippingCarrierClient,
) *MaintenanceRequestUseCase {
	return &MaintenanceRequestUseCase{
		repo:    repo,
		counter: counter,
		gate:    gate,
		carrier: carrier,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *MaintenanceRequestUseCase) authorize(actor entities.Actor, capability string) error {
	if err := u.gate.Authorize(actor, capability); err != nil {
		log.Printf("[request][usecase] access denied actor=%s role=%s capability=%s", actor.ID, actor.Role, capability)
		return fmt.Errorf("%w: %s", ErrAccessDenied, capability)
	}
	return nil
}

func (u *MaintenanceRequestUseCase) CreateRequest(ctx context.Context, actor entities.Actor, input CreateRequestInput) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityCreateRequest); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if err := validateIntake(input); err != nil {
		return entities.MaintenanceRequest{}, err
	}

	now := u.now()
	source := input.Source
	if !source.Valid() {
		source = entities.SourceCustomer
	}
	priority := input.Issue.Priority
	if priority == "" {
		priority = entities.PriorityNormal
	}

	images := make([]entities.IssueImage, 0, len(input.Issue.Images))
	for _, img := range input.Issue.Images {
		images = append(images, entities.IssueImage{
			ID:    uuid.NewString(),
			URL:   strings.TrimSpace(img.URL),
			Angle: strings.TrimSpace(img.Angle),
		})
	}

	req := entities.MaintenanceRequest{
		Source:   source,
		Customer: input.Customer,
		Device:   input.Device,
		Issue: entities.IssueRecord{
			Category:    strings.TrimSpace(input.Issue.Category),
			Description: strings.TrimSpace(input.Issue.Description),
			Priority:    priority,
			Images:      images,
			Symptoms:    input.Issue.Symptoms,
		},
		Status: entities.StatusRecord{Current: entities.StatusReceived},
		Cost: entities.CostBreakdown{
			DiagnosticFee: entities.DefaultDiagnosticFee,
			PriorityFee:   priority.Fee(),
			PaymentStatus: entities.PaymentStatusPending,
		},
		CustomerApproval: entities.CustomerApproval{Status: entities.ApprovalPending},
		Shipping: entities.NewShippingRecord(
			input.Shipping.Required,
			input.Shipping.ProviderHint,
			input.Shipping.Cost,
			input.Shipping.PickupAddress,
			input.Shipping.DeliveryAddress,
		),
		Timeline:  entities.Timeline{ReceivedAt: &now},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	req.RecalculateCost()
	req.StatusHistory = []entities.StatusHistoryEntry{{
		PreviousStatus: entities.StatusReceived,
		Timestamp:      now,
		Note:           entities.DefaultStatusNote(entities.StatusReceived),
		Actor:          actor,
	}}

	year := now.Year()
	for attempt := 1; attempt <= identityAttempts; attempt++ {
		seq, err := u.counter.NextSequence(ctx, year)
		if err != nil {
			return entities.MaintenanceRequest{}, err
		}
		req.Number = fmt.Sprintf("MNT-%d-%04d", year, seq)

		created, err := u.repo.Create(ctx, req)
		if err == nil {
			log.Printf("[request][usecase] created number=%s source=%s priority=%s total=%.2f", created.Number, created.Source, priority, created.Cost.TotalEstimated)
			observability.RequestsCreatedTotal.Inc()
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrRequestNumberTaken) {
			return entities.MaintenanceRequest{}, err
		}
		log.Printf("[request][usecase] number collision number=%s attempt=%d", req.Number, attempt)
	}
	return entities.MaintenanceRequest{}, ErrIdentityCollision
}

func validateIntake(input CreateRequestInput) error {
	if strings.TrimSpace(input.Customer.Name) == "" || strings.TrimSpace(input.Customer.Phone) == "" {
		return &ValidationError{Group: "customer", Reason: "name and phone are required"}
	}
	if strings.TrimSpace(input.Device.Model) == "" || strings.TrimSpace(input.Device.SerialNumber) == "" {
		return &ValidationError{Group: "device", Reason: "model and serial number are required"}
	}
	if strings.TrimSpace(input.Issue.Category) == "" || strings.TrimSpace(input.Issue.Description) == "" {
		return &ValidationError{Group: "issue", Reason: "category and description are required"}
	}
	if len(input.Issue.Images) < entities.MinIssueImages {
		return &ValidationError{
			Group:  "issue",
			Reason: fmt.Sprintf("at least %d images are required (front/back/side)", entities.MinIssueImages),
		}
	}
	if input.Issue.Priority != "" && !input.Issue.Priority.Valid() {
		return &ValidationError{Group: "issue", Reason: "unknown priority"}
	}
	return nil
}

func (u *MaintenanceRequestUseCase) GetByNumber(ctx context.Context, number string) (entities.MaintenanceRequest, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.MaintenanceRequest{}, ErrInvalidRequestNumber
	}
	req, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if req.Number == "" {
		return entities.MaintenanceRequest{}, ErrRequestNotFound
	}
	return req, nil
}

func (u *MaintenanceRequestUseCase) List(ctx context.Context, filter interfaces.ListFilter) ([]entities.MaintenanceRequest, string, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, "", ErrInvalidStatus
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return nil, "", ErrInvalidPriority
	}
	return u.repo.List(ctx, filter)
}

func (u *MaintenanceRequestUseCase) AddDiagnosis(ctx context.Context, actor entities.Actor, number string, input DiagnosisInput) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityDiagnose); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	diagnosis := entities.DiagnosisRecord{
		RootCause:      strings.TrimSpace(input.RootCause),
		RecommendedFix: strings.TrimSpace(input.RecommendedFix),
		RequiredParts:  input.RequiredParts,
		Repairable:     input.Repairable,
		EstimatedHours: input.EstimatedHours,
	}
	req.Diagnosis = &diagnosis
	req.Cost.PartsCost = diagnosis.PartsCost()
	req.Cost.LaborCost = input.LaborCost
	req.RecalculateCost()

	if req.Status.Current == entities.StatusReceived {
		if err := req.ApplyStatus(entities.StatusDiagnosed, input.Note, actor, u.now()); err != nil {
			return entities.MaintenanceRequest{}, err
		}
		observability.StatusTransitionsTotal.WithLabelValues(string(entities.StatusDiagnosed)).Inc()
	}

	return u.save(ctx, req)
}

func (u *MaintenanceRequestUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, number string, newStatus entities.RequestStatus, note string) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityUpdateStatus); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !newStatus.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidStatus
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if err := req.ApplyStatus(newStatus, note, actor, u.now()); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	observability.StatusTransitionsTotal.WithLabelValues(string(newStatus)).Inc()
	return u.save(ctx, req)
}

func (u *MaintenanceRequestUseCase) RecordApproval(ctx context.Context, actor entities.Actor, number string, input ApprovalInput) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityApprove); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !input.Decision.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidDecision
	}
	if !input.TargetStatus.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidStatus
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	now := u.now()
	// Validate the transition before touching the approval record so a
	// rejected transition leaves the aggregate untouched.
	if err := req.ApplyStatus(input.TargetStatus, input.Note, actor, now); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	observability.StatusTransitionsTotal.WithLabelValues(string(input.TargetStatus)).Inc()

	status := entities.ApprovalRejected
	if input.Decision == entities.DecisionApprove {
		status = entities.ApprovalApproved
	}
	req.CustomerApproval = entities.CustomerApproval{
		Status:        status,
		Decision:      input.Decision,
		CustomerNotes: strings.TrimSpace(input.CustomerNotes),
		DecidedAt:     &now,
		Channel:       strings.TrimSpace(input.Channel),
	}
	if input.Decision == entities.DecisionApprove && req.Timeline.ApprovedAt == nil {
		req.Timeline.ApprovedAt = &now
	}

	log.Printf("[request][usecase] approval recorded number=%s decision=%s target=%s", req.Number, input.Decision, input.TargetStatus)
	return u.save(ctx, req)
}

func (u *MaintenanceRequestUseCase) UpdatePaymentStatus(ctx context.Context, actor entities.Actor, number string, status entities.PaymentStatus) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityUpdatePayment); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !status.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidPaymentStatus
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	req.Cost.PaymentStatus = status
	req.RecalculateCost()
	return u.save(ctx, req)
}

func (u *MaintenanceRequestUseCase) UpdateShipping(ctx context.Context, actor entities.Actor, number string, input ShippingUpdateInput) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityUpdateShipping); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !input.Status.Valid() {
		return entities.MaintenanceRequest{}, ErrInvalidStatus
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if !req.Shipping.IsRequired {
		return entities.MaintenanceRequest{}, ErrShippingNotRequired
	}
	if !req.Shipping.Status.CanTransitionTo(input.Status) {
		return entities.MaintenanceRequest{}, ErrIllegalTransition
	}

	tracking := strings.TrimSpace(input.TrackingNumber)
	if input.Status == entities.ShippingPickedUp && tracking == "" && u.carrier != nil {
		confirmation, err := u.carrier.CreateShipment(ctx, entities.ShipmentDetails{
			RequestNumber:   req.Number,
			Provider:        req.Shipping.Provider,
			PickupAddress:   req.Shipping.PickupAddress,
			DeliveryAddress: req.Shipping.DeliveryAddress,
		})
		if err != nil {
			return entities.MaintenanceRequest{}, err
		}
		tracking = confirmation.TrackingNumber
		if confirmation.Cost > 0 {
			req.Shipping.Cost = confirmation.Cost
		}
	}
	if input.Status == entities.ShippingCancelled && req.Shipping.TrackingNumber != "" && u.carrier != nil {
		if err := u.carrier.CancelShipment(ctx, req.Shipping.TrackingNumber); err != nil {
			log.Printf("[request][usecase] carrier cancel failed number=%s tracking=%s err=%v", req.Number, req.Shipping.TrackingNumber, err)
		}
	}

	req.Shipping.Status = input.Status
	if tracking != "" {
		req.Shipping.TrackingNumber = tracking
	}
	if notes := strings.TrimSpace(input.Notes); notes != "" {
		req.Shipping.Notes = notes
	}

	note := fmt.Sprintf("Shipping %s", input.Status)
	if req.Shipping.TrackingNumber != "" {
		note = fmt.Sprintf("Shipping %s (tracking %s)", input.Status, req.Shipping.TrackingNumber)
	}
	req.RecordShippingEvent(note, actor, u.now())
	req.RecalculateCost()

	return u.save(ctx, req)
}

func (u *MaintenanceRequestUseCase) AssignTechnician(ctx context.Context, actor entities.Actor, number string, input TechnicianInput) (entities.MaintenanceRequest, error) {
	if err := u.authorize(actor, interfaces.CapabilityAssign); err != nil {
		return entities.MaintenanceRequest{}, err
	}
	if strings.TrimSpace(input.ID) == "" || strings.TrimSpace(input.Name) == "" {
		return entities.MaintenanceRequest{}, &ValidationError{Group: "technician", Reason: "id and name are required"}
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.MaintenanceRequest{}, err
	}

	req.Technician = &entities.TechnicianAssignment{
		ID:             strings.TrimSpace(input.ID),
		Name:           strings.TrimSpace(input.Name),
		Specialization: strings.TrimSpace(input.Specialization),
	}

	switch req.Status.Current {
	case entities.StatusInProgress, entities.StatusTesting, entities.StatusReady, entities.StatusCompleted:
		// Already at or past in_progress: record the assignment only.
	default:
		if err := req.ApplyStatus(entities.StatusInProgress, fmt.Sprintf("Assigned to %s", req.Technician.Name), actor, u.now()); err != nil {
			return entities.MaintenanceRequest{}, err
		}
		observability.StatusTransitionsTotal.WithLabelValues(string(entities.StatusInProgress)).Inc()
	}

	return u.save(ctx, req)
}

func (u *MaintenanceRequestUseCase) Delete(ctx context.Context, actor entities.Actor, number string) error {
	if err := u.authorize(actor, interfaces.CapabilityDeleteRequest); err != nil {
		return err
	}
	req, err := u.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if req.Source != entities.SourceAdmin {
		return ErrRequestNotDeletable
	}
	log.Printf("[request][usecase] deleting number=%s actor=%s", req.Number, actor.ID)
	return u.repo.Delete(ctx, req.Number)
}

func (u *MaintenanceRequestUseCase) save(ctx context.Context, req entities.MaintenanceRequest) (entities.MaintenanceRequest, error) {
	req.UpdatedAt = u.now()
	saved, err := u.repo.Save(ctx, req)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleAggregate) {
			return entities.MaintenanceRequest{}, ErrConcurrentUpdate
		}
		return entities.MaintenanceRequest{}, err
	}
	return saved, nil
}
