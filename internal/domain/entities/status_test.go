package entities

import "testing"

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward path", func(t *testing.T) {
		path := []RequestStatus{
			StatusReceived, StatusDiagnosed, StatusWaitingApproval, StatusApproved,
			StatusInProgress, StatusTesting, StatusReady, StatusCompleted,
		}
		for i := 0; i < len(path)-1; i++ {
			if !path[i].CanTransitionTo(path[i+1], "") {
				t.Fatalf("expected %s -> %s to be legal", path[i], path[i+1])
			}
		}
	})

	t.Run("diagnosed may skip waiting_approval", func(t *testing.T) {
		if !StatusDiagnosed.CanTransitionTo(StatusApproved, "") {
			t.Fatalf("expected diagnosed -> approved to be legal")
		}
	})

	t.Run("no skipping forward", func(t *testing.T) {
		if StatusReceived.CanTransitionTo(StatusApproved, "") {
			t.Fatalf("expected received -> approved to be illegal")
		}
		if StatusApproved.CanTransitionTo(StatusReady, "") {
			t.Fatalf("expected approved -> ready to be illegal")
		}
	})

	t.Run("no moving backwards", func(t *testing.T) {
		if StatusTesting.CanTransitionTo(StatusInProgress, "") {
			t.Fatalf("expected testing -> in_progress to be illegal")
		}
	})

	t.Run("cancelled reachable from any non-terminal", func(t *testing.T) {
		for _, s := range []RequestStatus{
			StatusReceived, StatusDiagnosed, StatusWaitingApproval, StatusApproved,
			StatusInProgress, StatusTesting, StatusReady, StatusOnHold,
		} {
			if !s.CanTransitionTo(StatusCancelled, StatusInProgress) {
				t.Fatalf("expected %s -> cancelled to be legal", s)
			}
		}
	})

	t.Run("terminal states allow nothing", func(t *testing.T) {
		for _, s := range []RequestStatus{StatusCompleted, StatusCancelled} {
			for target := range forwardTransitions {
				if s.CanTransitionTo(target, "") {
					t.Fatalf("expected %s -> %s to be illegal", s, target)
				}
			}
		}
	})

	t.Run("on_hold resumes only to paused status", func(t *testing.T) {
		if !StatusOnHold.CanTransitionTo(StatusInProgress, StatusInProgress) {
			t.Fatalf("expected on_hold -> in_progress (paused from in_progress) to be legal")
		}
		if StatusOnHold.CanTransitionTo(StatusTesting, StatusInProgress) {
			t.Fatalf("expected on_hold -> testing (paused from in_progress) to be illegal")
		}
		if StatusOnHold.CanTransitionTo(StatusOnHold, StatusInProgress) {
			t.Fatalf("expected on_hold -> on_hold to be illegal")
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		if RequestStatus("shipped").Valid() {
			t.Fatalf("expected unknown status to be invalid")
		}
		if StatusReceived.CanTransitionTo(RequestStatus("shipped"), "") {
			t.Fatalf("expected transition to unknown status to be illegal")
		}
	})
}

func TestPriority_Fee(t *testing.T) {
	cases := []struct {
		priority Priority
		fee      float64
	}{
		{PriorityNormal, 0},
		{PriorityUrgent, 50},
		{PriorityEmergency, 100},
	}
	for _, tc := range cases {
		if got := tc.priority.Fee(); got != tc.fee {
			t.Fatalf("fee for %s: expected %.0f, got %.0f", tc.priority, tc.fee, got)
		}
	}
	if Priority("rush").Valid() {
		t.Fatalf("expected unknown priority to be invalid")
	}
}
