package entities

import (
	"testing"
	"time"
)

func newTestRequest() MaintenanceRequest {
	now := time.Now().UTC()
	return MaintenanceRequest{
		Number: "MNT-2026-0001",
		Source: SourceCustomer,
		Status: StatusRecord{Current: StatusReceived},
		Cost: CostBreakdown{
			DiagnosticFee: DefaultDiagnosticFee,
			PaymentStatus: PaymentStatusPending,
		},
		Timeline:  Timeline{ReceivedAt: &now},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

func TestMaintenanceRequest_ApplyStatus(t *testing.T) {
	actor := Actor{ID: "tech-1", Name: "Tech", Role: RoleTechnician}

	t.Run("audit entry records the previous status", func(t *testing.T) {
		req := newTestRequest()
		now := time.Now().UTC()

		if err := req.ApplyStatus(StatusDiagnosed, "", actor, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Status.Current != StatusDiagnosed {
			t.Fatalf("expected diagnosed, got %s", req.Status.Current)
		}
		if len(req.StatusHistory) != 1 {
			t.Fatalf("expected 1 history entry, got %d", len(req.StatusHistory))
		}
		entry := req.StatusHistory[0]
		if entry.PreviousStatus != StatusReceived {
			t.Fatalf("expected previous status received, got %s", entry.PreviousStatus)
		}
		if entry.Note != DefaultStatusNote(StatusDiagnosed) {
			t.Fatalf("expected default note, got %q", entry.Note)
		}
		if entry.Actor.ID != "tech-1" {
			t.Fatalf("expected actor tech-1, got %s", entry.Actor.ID)
		}
	})

	t.Run("illegal transition leaves the aggregate untouched", func(t *testing.T) {
		req := newTestRequest()
		if err := req.ApplyStatus(StatusCompleted, "", actor, time.Now()); err != ErrIllegalTransition {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
		if req.Status.Current != StatusReceived || len(req.StatusHistory) != 0 {
			t.Fatalf("aggregate mutated on illegal transition: %+v", req.Status)
		}
	})

	t.Run("timeline markers", func(t *testing.T) {
		req := newTestRequest()
		now := time.Now().UTC()
		steps := []struct {
			status RequestStatus
			marker func() *time.Time
		}{
			{StatusDiagnosed, func() *time.Time { return req.Timeline.DiagnosedAt }},
			{StatusApproved, func() *time.Time { return req.Timeline.ApprovedAt }},
			{StatusInProgress, func() *time.Time { return req.Timeline.StartedAt }},
			{StatusTesting, func() *time.Time { return nil }},
			{StatusReady, func() *time.Time { return req.Timeline.DeliveredAt }},
			{StatusCompleted, func() *time.Time { return req.Timeline.CompletedAt }},
		}
		for _, step := range steps {
			if err := req.ApplyStatus(step.status, "", actor, now); err != nil {
				t.Fatalf("transition to %s failed: %v", step.status, err)
			}
			if step.status == StatusTesting {
				continue
			}
			if step.marker() == nil {
				t.Fatalf("expected timeline marker set for %s", step.status)
			}
		}
	})

	t.Run("on hold remembers and resumes", func(t *testing.T) {
		req := newTestRequest()
		now := time.Now().UTC()
		for _, s := range []RequestStatus{StatusDiagnosed, StatusApproved, StatusInProgress} {
			if err := req.ApplyStatus(s, "", actor, now); err != nil {
				t.Fatalf("transition to %s failed: %v", s, err)
			}
		}

		if err := req.ApplyStatus(StatusOnHold, "waiting for a part", actor, now); err != nil {
			t.Fatalf("pause failed: %v", err)
		}
		if req.Status.ResumesTo != StatusInProgress {
			t.Fatalf("expected resumes_to in_progress, got %s", req.Status.ResumesTo)
		}

		if err := req.ApplyStatus(StatusTesting, "", actor, now); err != ErrIllegalTransition {
			t.Fatalf("expected resume to wrong status to fail, got %v", err)
		}
		if err := req.ApplyStatus(StatusInProgress, "", actor, now); err != nil {
			t.Fatalf("resume failed: %v", err)
		}
		if req.Status.ResumesTo != "" {
			t.Fatalf("expected resumes_to cleared, got %s", req.Status.ResumesTo)
		}
	})
}

func TestMaintenanceRequest_RecordShippingEvent(t *testing.T) {
	req := newTestRequest()
	actor := Actor{ID: "tech-1", Role: RoleTechnician}
	now := time.Now().UTC()

	req.RecordShippingEvent("Shipping picked_up (tracking TRK-1)", actor, now)

	if req.Status.Current != StatusReceived {
		t.Fatalf("shipping event must not move the main status, got %s", req.Status.Current)
	}
	if len(req.StatusHistory) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(req.StatusHistory))
	}
	if req.StatusHistory[0].PreviousStatus != StatusReceived {
		t.Fatalf("expected previous status received, got %s", req.StatusHistory[0].PreviousStatus)
	}
}

func TestMaintenanceRequest_RecalculateCost(t *testing.T) {
	t.Run("shipping cost feeds the breakdown when required", func(t *testing.T) {
		req := newTestRequest()
		req.Shipping = ShippingRecord{IsRequired: true, Cost: 40, Status: ShippingPending}
		req.RecalculateCost()
		if req.Cost.ShippingFee != 40 {
			t.Fatalf("expected shipping fee 40, got %.2f", req.Cost.ShippingFee)
		}
		if req.Cost.TotalEstimated != 65 {
			t.Fatalf("expected estimated 65, got %.2f", req.Cost.TotalEstimated)
		}
	})

	t.Run("shipping cost ignored when not required", func(t *testing.T) {
		req := newTestRequest()
		req.Shipping = ShippingRecord{IsRequired: false, Cost: 40, Status: ShippingPending}
		req.RecalculateCost()
		if req.Cost.ShippingFee != 0 {
			t.Fatalf("expected shipping fee 0, got %.2f", req.Cost.ShippingFee)
		}
	})
}

func TestDiagnosisRecord_PartsCost(t *testing.T) {
	d := DiagnosisRecord{RequiredParts: []RequiredPart{
		{Name: "screen", Price: 30, Available: true},
		{Name: "battery", Price: 45, Available: false},
	}}
	if got := d.PartsCost(); got != 75 {
		t.Fatalf("expected 75, got %.2f", got)
	}
}
