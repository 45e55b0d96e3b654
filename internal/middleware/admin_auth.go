// File: internal/middleware/admin_auth.go
package middleware

import (
	"teeup_backend/internal/auth"
	"teeup_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuth guards the admin review API with a Firebase ID token.
// A nil verifier means Firebase is not configured: requests are refused with 503 unless
// disabled is set, in which case they pass through unauthenticated.
func AdminAuth(verifier auth.AdminVerifier, disabled bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			logger.Warn("Admin authentication is disabled; allowing request", zap.String("path", c.Request.URL.Path))
			c.Next()
			return
		}
		if verifier == nil {
			common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails("Admin authentication is not configured."))
			return
		}

		if c.GetHeader(common.AuthorizationHeader) == "" {
			logger.Debug("Authorization header missing")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header is required."))
			return
		}
		token := common.GetTokenFromContext(c)
		if token == "" {
			logger.Debug("Authorization header format invalid")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		identity, err := verifier.VerifyAdmin(c.Request.Context(), token)
		if err != nil {
			if auth.IsAuthError(err) {
				logger.Debug("Admin verification refused", zap.Error(err))
				common.RespondWithError(c, err)
				return
			}
			logger.Error("Admin verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrServiceUnavailable.WithDetails("Admin authentication is temporarily unavailable."))
			return
		}

		c.Set(common.AdminUIDKey, identity.UID)
		c.Set(common.AdminEmailKey, identity.Email)
		logger.Debug("Admin authenticated", zap.String("uid", identity.UID))
		c.Next()
	}
}
