// File: internal/auth/admin.go
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"teeup_backend/internal/common"
	"teeup_backend/internal/config"
	"teeup_backend/internal/firebase"

	"go.uber.org/zap"
)

// AdminClaim is the Firebase custom claim that marks an admin account.
const AdminClaim = "admin"

var (
	ErrInvalidToken = common.ErrUnauthorized.WithDetails("Invalid or expired ID token.")
	ErrNotAdmin     = common.ErrForbidden.WithDetails("Account is not an administrator.")
)

type adminVerifier struct {
	tokens IDTokenVerifier
	emails map[string]struct{}
	cache  *TokenCache
	logger *zap.Logger
}

// NewAdminVerifier accepts tokens that verify and either carry the admin custom claim or
// belong to one of the allow-listed emails.
func NewAdminVerifier(tokens IDTokenVerifier, adminEmails []string, cache *TokenCache, logger *zap.Logger) AdminVerifier {
	emails := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		emails[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &adminVerifier{tokens: tokens, emails: emails, cache: cache, logger: logger}
}

// ProvideAdminVerifier returns nil when Firebase is not configured.
func ProvideAdminVerifier(fb *firebase.FirebaseService, cfg *config.Config, logger *zap.Logger) AdminVerifier {
	if fb == nil {
		return nil
	}
	return NewAdminVerifier(fb, cfg.AdminEmails, NewTokenCache(cfg.AdminTokenCacheTTL), logger.Named("AdminVerifier"))
}

func (v *adminVerifier) VerifyAdmin(ctx context.Context, idToken string) (*Identity, error) {
	if idToken == "" {
		return nil, ErrInvalidToken
	}
	if id, ok := v.cache.Get(idToken); ok {
		return id, nil
	}

	token, err := v.tokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("Admin token rejected", zap.Error(err))
		return nil, ErrInvalidToken
	}

	email, _ := token.Claims["email"].(string)
	email = strings.ToLower(email)
	isAdmin, _ := token.Claims[AdminClaim].(bool)
	if _, listed := v.emails[email]; !isAdmin && !(listed && email != "") {
		v.logger.Warn("Non-admin account attempted admin access", zap.String("uid", token.UID))
		return nil, ErrNotAdmin
	}

	id := &Identity{UID: token.UID, Email: email}
	v.cache.Put(idToken, id, time.Unix(token.Expires, 0))
	return id, nil
}

// IsAuthError reports whether err came from admin verification.
func IsAuthError(err error) bool {
	return errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrForbidden)
}
