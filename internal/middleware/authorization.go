package middleware

import (
	"net/http"

	"agriquest/internal/model"
	"agriquest/pkg/auth"
	"agriquest/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the given roles. It must run
// after the auth middleware, which puts the session claims in context.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		log := logger.Logger()

		claims, ok := auth.SessionFromContext(c)
		if !ok {
			log.Error("session claims not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if _, ok := allowed[claims.Role]; !ok {
			log.Info("role denied access to restricted endpoint",
				zap.String("user_id", claims.UserID),
				zap.String("role", string(claims.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}

		c.Next()
	}
}
