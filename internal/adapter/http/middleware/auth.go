package middleware

import (
	"strings"

	"techmend/internal/domain/entities"
	"techmend/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// ActorExtraction resolves the acting party from a Bearer token and stores it
// in the request context. Requests without a (valid) token proceed as an
// anonymous customer; the capability gate decides what that actor may do.
func ActorExtraction(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := entities.Actor{ID: "anonymous", Role: entities.RoleCustomer}

		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if resolved, err := jwtManager.ValidateToken(strings.TrimSpace(token)); err == nil {
				actor = resolved
			}
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor stored by ActorExtraction.
func ActorFromContext(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{ID: "anonymous", Role: entities.RoleCustomer}
}
