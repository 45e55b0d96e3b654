// File: internal/common/context_helpers.go
package common

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetTokenFromContext retrieves the bearer token from the Authorization header.
// Returns an empty string if not found.
func GetTokenFromContext(c *gin.Context) string {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], AuthorizationTypeBearer) {
		return ""
	}
	return parts[1]
}

// GetRequestIDFromContext retrieves the request ID set by the logging middleware.
func GetRequestIDFromContext(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// GetAdminUIDFromContext retrieves the admin Firebase UID from the Gin context.
func GetAdminUIDFromContext(c *gin.Context) string {
	return c.GetString(AdminUIDKey)
}

// LoggerFromContext returns the request-scoped logger, or fallback when none was set.
func LoggerFromContext(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, exists := c.Get(LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return fallback
}
