// File: internal/auth/token_cache.go
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// TokenCache keeps identities of already verified tokens until they expire.
// Keys are token hashes, never raw tokens.
type TokenCache struct {
	cache  *cache.Cache
	maxTTL time.Duration
}

// NewTokenCache creates a cache whose entries live at most maxTTL.
func NewTokenCache(maxTTL time.Duration) *TokenCache {
	return &TokenCache{
		cache:  cache.New(maxTTL, 2*maxTTL),
		maxTTL: maxTTL,
	}
}

// Put caches id for the token until min(expiresAt, now+maxTTL).
func (c *TokenCache) Put(token string, id *Identity, expiresAt time.Time) {
	if c == nil || c.maxTTL <= 0 {
		return
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	if ttl > c.maxTTL {
		ttl = c.maxTTL
	}
	c.cache.Set(tokenKey(token), id, ttl)
}

// Get returns the cached identity for token, if any.
func (c *TokenCache) Get(token string) (*Identity, bool) {
	if c == nil || c.maxTTL <= 0 {
		return nil, false
	}
	v, found := c.cache.Get(tokenKey(token))
	if !found {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
