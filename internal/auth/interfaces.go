// File: internal/auth/interfaces.go
package auth

import (
	"context"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// IDTokenVerifier verifies identity-provider tokens. *firebase.FirebaseService implements it.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// AdminVerifier resolves a bearer token to an admin identity.
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, idToken string) (*Identity, error)
}

// Identity is the authenticated admin.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
