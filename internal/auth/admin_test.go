package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"teeup_backend/internal/common"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockTokenVerifier struct {
	mock.Mock
}

func (m *mockTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	args := m.Called(ctx, idToken)
	if t := args.Get(0); t != nil {
		return t.(*firebaseauth.Token), args.Error(1)
	}
	return nil, args.Error(1)
}

func tokenFor(uid, email string, admin bool) *firebaseauth.Token {
	claims := map[string]interface{}{"email": email}
	if admin {
		claims[AdminClaim] = true
	}
	return &firebaseauth.Token{UID: uid, Expires: time.Now().Add(time.Hour).Unix(), Claims: claims}
}

func TestVerifyAdmin_AdminClaim(t *testing.T) {
	tokens := new(mockTokenVerifier)
	tokens.On("VerifyIDToken", mock.Anything, "tok").Return(tokenFor("u1", "someone@teeup.golf", true), nil).Once()

	v := NewAdminVerifier(tokens, nil, NewTokenCache(time.Minute), zap.NewNop())
	id, err := v.VerifyAdmin(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UID)

	// Second call is served from the cache.
	id, err = v.VerifyAdmin(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "someone@teeup.golf", id.Email)
	tokens.AssertExpectations(t)
}

func TestVerifyAdmin_EmailAllowList(t *testing.T) {
	tokens := new(mockTokenVerifier)
	tokens.On("VerifyIDToken", mock.Anything, "tok").Return(tokenFor("u2", "Ops@TeeUp.golf", false), nil)

	v := NewAdminVerifier(tokens, []string{"ops@teeup.golf"}, nil, zap.NewNop())
	id, err := v.VerifyAdmin(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "ops@teeup.golf", id.Email)
}

func TestVerifyAdmin_NotAdmin(t *testing.T) {
	tokens := new(mockTokenVerifier)
	tokens.On("VerifyIDToken", mock.Anything, "tok").Return(tokenFor("u3", "guest@example.com", false), nil)

	v := NewAdminVerifier(tokens, []string{"ops@teeup.golf"}, NewTokenCache(time.Minute), zap.NewNop())
	_, err := v.VerifyAdmin(context.Background(), "tok")
	assert.ErrorIs(t, err, common.ErrForbidden)
	assert.True(t, IsAuthError(err))
}

func TestVerifyAdmin_InvalidToken(t *testing.T) {
	tokens := new(mockTokenVerifier)
	tokens.On("VerifyIDToken", mock.Anything, "bad").Return(nil, errors.New("expired"))

	v := NewAdminVerifier(tokens, nil, NewTokenCache(time.Minute), zap.NewNop())
	_, err := v.VerifyAdmin(context.Background(), "bad")
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = v.VerifyAdmin(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	tokens.AssertNumberOfCalls(t, "VerifyIDToken", 1)
}

func TestTokenCache_ExpiredTokenNotCached(t *testing.T) {
	c := NewTokenCache(time.Minute)
	c.Put("old", &Identity{UID: "u"}, time.Now().Add(-time.Second))
	_, ok := c.Get("old")
	assert.False(t, ok)

	c.Put("fresh", &Identity{UID: "u"}, time.Now().Add(time.Hour))
	id, ok := c.Get("fresh")
	require.True(t, ok)
	assert.Equal(t, "u", id.UID)
}
