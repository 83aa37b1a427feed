package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/strandlab/strand-backend/internal/logger"
	"github.com/strandlab/strand-backend/internal/requestdata"
)

// AuthMiddleware trusts the user identity established upstream: the gateway
// authenticates the mobile client and forwards the user id in X-User-Id.
// This service never sees credentials.
type AuthMiddleware struct {
	log *logger.Logger
}

func NewAuthMiddleware(log *logger.Logger) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger}
}

func (am *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing user authentication", "code": "UNAUTHORIZED"},
			})
			return
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
