// Package middleware provides the gin request filters: the session
// token gate and the redis-backed rate limiter.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tusharnayak1515/users-data-backend/internal/token"
)

// TokenHeader is the request header carrying the raw session token.
// Header lookup is case-insensitive; the value is the bare token string
// with no scheme prefix.
const TokenHeader = "user-auth-token"

// ContextUserKey is the gin context key under which the authenticated
// user id is stored for downstream handlers.
const ContextUserKey = "user_id"

// Auth returns a middleware that rejects requests without a valid
// session token and injects the authenticated user id into the context.
// A missing header is rejected before the verifier is ever consulted.
func Auth(tokens *token.Manager) gin.HandlerFunc {
	if tokens == nil {
		panic("token manager cannot be nil for Auth middleware")
	}

	return func(c *gin.Context) {
		raw := c.GetHeader(TokenHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Please authenticate using a valid token",
			})
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			logrus.WithError(err).Warn("Auth middleware: invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			return
		}

		c.Set(ContextUserKey, userID)
		c.Next()
	}
}
