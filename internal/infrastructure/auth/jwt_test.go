package auth

import (
	"testing"

	"techmend/internal/domain/entities"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManagerFromEnv()

	actor := entities.Actor{ID: "tech-1", Name: "Tech", Role: entities.RoleTechnician}
	token, err := manager.GenerateToken(actor)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	resolved, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if resolved != actor {
		t.Fatalf("expected %+v, got %+v", actor, resolved)
	}
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := NewJWTManagerFromEnv()
	if _, err := manager.ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
