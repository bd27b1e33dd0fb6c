package entities

import "time"

// RequestSource governs edit/delete rights: admin-sourced requests may be
// deleted by staff, customer-sourced requests never are.
type RequestSource string

const (
	SourceCustomer RequestSource = "customer"
	SourceAdmin    RequestSource = "admin"
)

func (s RequestSource) Valid() bool {
	return s == SourceCustomer || s == SourceAdmin
}

// CustomerSnapshot is copied at intake time, not a live reference.
type CustomerSnapshot struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	NationalID string `json:"national_id,omitempty"`
}

// UnlockCredential holds how the technician unlocks the device.
type UnlockCredential struct {
	Kind  string `json:"kind"` // "text" or "pattern"
	Value string `json:"value"`
}

type DeviceSnapshot struct {
	Brand         string            `json:"brand"`
	Model         string            `json:"model"`
	Color         string            `json:"color,omitempty"`
	Storage       string            `json:"storage,omitempty"`
	SerialNumber  string            `json:"serial_number"`
	UnderWarranty bool              `json:"under_warranty"`
	Unlock        *UnlockCredential `json:"unlock,omitempty"`
}

// IssueImage is one piece of photographic evidence attached at intake.
type IssueImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Angle string `json:"angle,omitempty"` // front, back, side
}

// MinIssueImages is the admission invariant: fewer images and intake fails.
const MinIssueImages = 3

type IssueRecord struct {
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Images      []IssueImage `json:"images"`
	Symptoms    []string     `json:"symptoms,omitempty"`
}

type RequiredPart struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// DiagnosisRecord is present only after the diagnosis operation ran.
type DiagnosisRecord struct {
	RootCause      string         `json:"root_cause"`
	RecommendedFix string         `json:"recommended_fix"`
	RequiredParts  []RequiredPart `json:"required_parts,omitempty"`
	Repairable     bool           `json:"repairable"`
	EstimatedHours float64        `json:"estimated_hours"`
}

// PartsCost sums the prices of the required parts.
func (d DiagnosisRecord) PartsCost() float64 {
	total := 0.0
	for _, p := range d.RequiredParts {
		total += p.Price
	}
	return total
}

// ApprovalStatus is the customer's one-shot decision on the proposed repair.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type ApprovalDecision string

const (
	DecisionApprove ApprovalDecision = "approve"
	DecisionReject  ApprovalDecision = "reject"
)

func (d ApprovalDecision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

type CustomerApproval struct {
	Status        ApprovalStatus   `json:"status"`
	Decision      ApprovalDecision `json:"decision,omitempty"`
	CustomerNotes string           `json:"customer_notes,omitempty"`
	DecidedAt     *time.Time       `json:"decided_at,omitempty"`
	Channel       string           `json:"channel,omitempty"` // phone, portal, in_store
}

type TechnicianAssignment struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
}

// Timeline holds the milestone markers updated by status transitions.
type Timeline struct {
	ReceivedAt  *time.Time `json:"received_at,omitempty"`
	DiagnosedAt *time.Time `json:"diagnosed_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// StatusRecord is the current lifecycle position. ResumesTo is only set while
// Current is on_hold and names the status the pause will return to.
type StatusRecord struct {
	Current   RequestStatus `json:"current"`
	ResumesTo RequestStatus `json:"resumes_to,omitempty"`
}

// MaintenanceRequest is the aggregate: the unit of persistence, mutation and
// contention. One logical operation reads it, mutates it in memory and writes
// it back as a single unit.
type MaintenanceRequest struct {
	Number           string                `json:"number"`
	Source           RequestSource         `json:"source"`
	Customer         CustomerSnapshot      `json:"customer"`
	Device           DeviceSnapshot        `json:"device"`
	Issue            IssueRecord           `json:"issue"`
	Diagnosis        *DiagnosisRecord      `json:"diagnosis,omitempty"`
	Status           StatusRecord          `json:"status"`
	Cost             CostBreakdown         `json:"cost"`
	CustomerApproval CustomerApproval      `json:"customer_approval"`
	Shipping         ShippingRecord        `json:"shipping"`
	Technician       *TechnicianAssignment `json:"technician,omitempty"`
	Timeline         Timeline              `json:"timeline"`
	StatusHistory    []StatusHistoryEntry  `json:"status_history"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`

	// Version backs optimistic concurrency in the repository; a stale writer
	// loses instead of clobbering the audit trail.
	Version int64 `json:"version"`
}

// ApplyStatus validates and executes a lifecycle transition: it appends one
// audit entry recording the previous status, moves Current, keeps the on_hold
// resume bookkeeping and stamps the matching timeline marker.
func (r *MaintenanceRequest) ApplyStatus(newStatus RequestStatus, note string, actor Actor, now time.Time) error {
	if !r.Status.Current.CanTransitionTo(newStatus, r.Status.ResumesTo) {
		return ErrIllegalTransition
	}
	if note == "" {
		note = DefaultStatusNote(newStatus)
	}
	r.StatusHistory = append(r.StatusHistory, StatusHistoryEntry{
		PreviousStatus: r.Status.Current,
		Timestamp:      now,
		Note:           note,
		Actor:          actor,
	})
	if newStatus == StatusOnHold {
		r.Status.ResumesTo = r.Status.Current
	} else {
		r.Status.ResumesTo = ""
	}
	r.Status.Current = newStatus
	r.applyTimelineMarker(newStatus, now)
	return nil
}

func (r *MaintenanceRequest) applyTimelineMarker(s RequestStatus, now time.Time) {
	switch s {
	case StatusDiagnosed:
		r.Timeline.DiagnosedAt = &now
	case StatusApproved:
		r.Timeline.ApprovedAt = &now
	case StatusInProgress:
		r.Timeline.StartedAt = &now
	case StatusCompleted:
		r.Timeline.CompletedAt = &now
	case StatusReady:
		r.Timeline.DeliveredAt = &now
	}
}

// RecordShippingEvent appends an audit entry for a shipping change. The
// shipping sub-state has no trail of its own; it borrows the parent's, and
// the entry's previous status is the unchanged main status.
func (r *MaintenanceRequest) RecordShippingEvent(note string, actor Actor, now time.Time) {
	r.StatusHistory = append(r.StatusHistory, StatusHistoryEntry{
		PreviousStatus: r.Status.Current,
		Timestamp:      now,
		Note:           note,
		Actor:          actor,
	})
}

// RecalculateCost folds the current shipping cost into the breakdown and
// recomputes the totals.
func (r *MaintenanceRequest) RecalculateCost() {
	if r.Shipping.IsRequired {
		r.Cost.ShippingFee = r.Shipping.Cost
	} else {
		r.Cost.ShippingFee = 0
	}
	r.Cost.Recalculate()
}
