package entities

import "time"

// ActorRole classifies who performed an operation.
type ActorRole string

const (
	RoleCustomer   ActorRole = "customer"
	RoleTechnician ActorRole = "technician"
	RoleAdmin      ActorRole = "admin"
	RoleSystem     ActorRole = "system"
)

// Actor identifies the party invoking an operation. The access gate decides
// whether an actor's role carries the capability the operation requires.
type Actor struct {
	ID   string    `json:"id"`
	Name string    `json:"name,omitempty"`
	Role ActorRole `json:"role"`
}

// SystemActor is recorded on entries produced by the service itself.
var SystemActor = Actor{ID: "system", Name: "system", Role: RoleSystem}

// StatusHistoryEntry is one immutable line of the audit trail.
//
// PreviousStatus records the status that was active until Timestamp, so the
// trail reads as "this status held until this moment". Entries are only ever
// appended; corrections are new entries, never edits.
type StatusHistoryEntry struct {
	PreviousStatus RequestStatus `json:"previous_status"`
	Timestamp      time.Time     `json:"timestamp"`
	Note           string        `json:"note"`
	Actor          Actor         `json:"actor"`
}
