package entities

import "errors"

// RequestStatus is the lifecycle state of a maintenance request.
//
// The set is closed: every status a request can hold is declared below, and
// legality of moving between two statuses is owned by the transition table in
// this file rather than by callers.

type RequestStatus string

const (
	StatusReceived        RequestStatus = "received"
	StatusDiagnosed       RequestStatus = "diagnosed"
	StatusWaitingApproval RequestStatus = "waiting_approval"
	StatusApproved        RequestStatus = "approved"
	StatusInProgress      RequestStatus = "in_progress"
	StatusTesting         RequestStatus = "testing"
	StatusReady           RequestStatus = "ready"
	StatusCompleted       RequestStatus = "completed"
	StatusCancelled       RequestStatus = "cancelled"
	StatusOnHold          RequestStatus = "on_hold"
)

var ErrIllegalTransition = errors.New("illegal status transition")

// forwardTransitions is the adjacency table for the regular (forward) path.
// cancelled and on_hold are handled separately: cancelled is reachable from
// any non-terminal status, on_hold pauses any active status and resumes only
// to the status it paused.
var forwardTransitions = map[RequestStatus][]RequestStatus{
	StatusReceived:        {StatusDiagnosed},
	StatusDiagnosed:       {StatusWaitingApproval, StatusApproved},
	StatusWaitingApproval: {StatusApproved},
	StatusApproved:        {StatusInProgress},
	StatusInProgress:      {StatusTesting},
	StatusTesting:         {StatusReady},
	StatusReady:           {StatusCompleted},
	StatusCompleted:       {},
	StatusCancelled:       {},
	StatusOnHold:          {},
}

func (s RequestStatus) Valid() bool {
	_, ok := forwardTransitions[s]
	return ok
}

func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to target is legal.
// resumesTo is the status an on_hold request paused from; it is ignored
// unless s is on_hold.
func (s RequestStatus) CanTransitionTo(target, resumesTo RequestStatus) bool {
	if !s.Valid() || !target.Valid() || s == target {
		return false
	}
	if s.Terminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	if target == StatusOnHold {
		return s != StatusOnHold
	}
	if s == StatusOnHold {
		return target == resumesTo
	}
	for _, next := range forwardTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// defaultStatusNotes supply the audit note when a caller does not provide one.
var defaultStatusNotes = map[RequestStatus]string{
	StatusReceived:        "Request received",
	StatusDiagnosed:       "Diagnosis completed",
	StatusWaitingApproval: "Waiting for customer approval",
	StatusApproved:        "Approved by customer",
	StatusInProgress:      "Repair in progress",
	StatusTesting:         "Device under testing",
	StatusReady:           "Device ready for pickup",
	StatusCompleted:       "Request completed",
	StatusCancelled:       "Request cancelled",
	StatusOnHold:          "Request put on hold",
}

func DefaultStatusNote(s RequestStatus) string {
	return defaultStatusNotes[s]
}

// Priority classifies how urgent the customer considers the issue.
type Priority string

const (
	PriorityNormal    Priority = "normal"
	PriorityUrgent    Priority = "urgent"
	PriorityEmergency Priority = "emergency"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityNormal, PriorityUrgent, PriorityEmergency:
		return true
	}
	return false
}

// PriorityFee is the surcharge added to the cost breakdown per priority.
func (p Priority) Fee() float64 {
	switch p {
	case PriorityUrgent:
		return 50
	case PriorityEmergency:
		return 100
	default:
		return 0
	}
}
