package auth

import (
	"errors"
	"os"
	"time"

	"techmend/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by staff/customer tokens. The role claim is what the
// capability gate authorizes against.
type Claims struct {
	ActorID string `json:"actor_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManagerFromEnv() *JWTManager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "techmend-dev-secret"
	}
	return &JWTManager{
		secret: []byte(secret),
		issuer: "techmend",
		ttl:    24 * time.Hour,
	}
}

// GenerateToken mints a token for an actor. Tokens are normally issued by the
// back office; this is used by tooling and tests.
func (j *JWTManager) GenerateToken(actor entities.Actor) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		ActorID: actor.ID,
		Name:    actor.Name,
		Role:    string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateToken verifies a token and returns the actor it identifies.
func (j *JWTManager) ValidateToken(tokenString string) (entities.Actor, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		return entities.Actor{}, err
	}
	if !token.Valid {
		return entities.Actor{}, errors.New("invalid token")
	}

	return entities.Actor{
		ID:   claims.ActorID,
		Name: claims.Name,
		Role: entities.ActorRole(claims.Role),
	}, nil
}
