package interfaces

import (
	"errors"

	"techmend/internal/domain/entities"
)

// Capabilities checked before each mutating operation.
const (
	CapabilityCreateRequest  = "request:create"
	CapabilityDiagnose       = "request:diagnose"
	CapabilityUpdateStatus   = "request:update_status"
	CapabilityApprove        = "request:approve"
	CapabilityUpdateShipping = "request:ship"
	CapabilityAssign         = "request:assign"
	CapabilityDeleteRequest  = "request:delete"
	CapabilityUpdatePayment  = "payment:update"
	CapabilityRecordPayment  = "payment:record"
	CapabilityUploadMedia    = "media:upload"
)

// ErrAccessDenied is returned by the gate when the actor's role does not
// carry the required capability. The operation performs no writes.
var ErrAccessDenied = errors.New("access denied")

// IAccessGate is the external authorization collaborator. The core consumes
// the yes/no answer; it does not own the permission table.
type IAccessGate interface {
	Authorize(actor entities.Actor, capability string) error
}
