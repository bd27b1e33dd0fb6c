package auth

import (
	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"
)

// RoleCapabilityGate is the access gate implementation: a static table from
// role to the capabilities it carries. The lifecycle core only consumes the
// allow/deny answer.

type RoleCapabilityGate struct {
	table map[entities.ActorRole]map[string]bool
}

var _ interfaces.IAccessGate = (*RoleCapabilityGate)(nil)

func NewRoleCapabilityGate() *RoleCapabilityGate {
	all := map[string]bool{
		interfaces.CapabilityCreateRequest:  true,
		interfaces.CapabilityDiagnose:       true,
		interfaces.CapabilityUpdateStatus:   true,
		interfaces.CapabilityApprove:        true,
		interfaces.CapabilityUpdateShipping: true,
		interfaces.CapabilityAssign:         true,
		interfaces.CapabilityDeleteRequest:  true,
		interfaces.CapabilityUpdatePayment:  true,
		interfaces.CapabilityRecordPayment:  true,
		interfaces.CapabilityUploadMedia:    true,
	}

	return &RoleCapabilityGate{
		table: map[entities.ActorRole]map[string]bool{
			entities.RoleCustomer: {
				interfaces.CapabilityCreateRequest: true,
				interfaces.CapabilityApprove:       true,
				interfaces.CapabilityRecordPayment: true,
				interfaces.CapabilityUploadMedia:   true,
			},
			entities.RoleTechnician: {
				interfaces.CapabilityDiagnose:       true,
				interfaces.CapabilityUpdateStatus:   true,
				interfaces.CapabilityUpdateShipping: true,
				interfaces.CapabilityUploadMedia:    true,
			},
			entities.RoleAdmin:  all,
			entities.RoleSystem: all,
		},
	}
}

func (g *RoleCapabilityGate) Authorize(actor entities.Actor, capability string) error {
	caps, ok := g.table[actor.Role]
	if !ok || !caps[capability] {
		return interfaces.ErrAccessDenied
	}
	return nil
}
