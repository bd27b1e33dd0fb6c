package auth

import (
	"testing"

	"techmend/internal/domain/entities"
	"techmend/internal/usecase/interfaces"
)

func TestRoleCapabilityGate_Authorize(t *testing.T) {
	gate := NewRoleCapabilityGate()

	cases := []struct {
		role       entities.ActorRole
		capability string
		allowed    bool
	}{
		{entities.RoleCustomer, interfaces.CapabilityCreateRequest, true},
		{entities.RoleCustomer, interfaces.CapabilityApprove, true},
		{entities.RoleCustomer, interfaces.CapabilityDiagnose, false},
		{entities.RoleCustomer, interfaces.CapabilityDeleteRequest, false},
		{entities.RoleTechnician, interfaces.CapabilityDiagnose, true},
		{entities.RoleTechnician, interfaces.CapabilityUpdateShipping, true},
		{entities.RoleTechnician, interfaces.CapabilityDeleteRequest, false},
		{entities.RoleAdmin, interfaces.CapabilityDeleteRequest, true},
		{entities.RoleSystem, interfaces.CapabilityUpdateStatus, true},
		{entities.ActorRole("stranger"), interfaces.CapabilityCreateRequest, false},
	}
	for _, tc := range cases {
		err := gate.Authorize(entities.Actor{ID: "x", Role: tc.role}, tc.capability)
		if tc.allowed && err != nil {
			t.Fatalf("expected %s to hold %s, got %v", tc.role, tc.capability, err)
		}
		if !tc.allowed && err == nil {
			t.Fatalf("expected %s to be denied %s", tc.role, tc.capability)
		}
	}
}
