// File: internal/theme/service.go
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"teeup_backend/internal/common"
	"teeup_backend/internal/profile"

	"go.uber.org/zap"
)

// ErrProfileNotFound is returned for slugs outside the catalog.
var ErrProfileNotFound = errors.New("profile not found")

// Service reads and updates pro page themes.
type Service interface {
	// Get returns the saved theme, or the catalog theme when none was saved.
	Get(ctx context.Context, slug string) (profile.Theme, error)
	// Update merges u over the current theme, validates and saves the result.
	Update(ctx context.Context, slug string, u profile.ThemeUpdate) (profile.Theme, error)
}

type service struct {
	mu     sync.Mutex
	store  *profile.Store
	repo   Repository
	logger *zap.Logger
}

func NewService(store *profile.Store, repo Repository, logger *zap.Logger) Service {
	return &service{store: store, repo: repo, logger: logger.Named("ThemeService")}
}

func (s *service) Get(ctx context.Context, slug string) (profile.Theme, error) {
	catalog, ok := s.store.Theme(slug)
	if !ok {
		return profile.Theme{}, ErrProfileNotFound
	}
	saved, found, err := s.repo.Find(ctx, slug)
	if err != nil {
		return profile.Theme{}, fmt.Errorf("load theme of %q: %w", slug, err)
	}
	if found {
		return saved, nil
	}
	return catalog, nil
}

func (s *service) Update(ctx context.Context, slug string, u profile.ThemeUpdate) (profile.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx, slug)
	if err != nil {
		return profile.Theme{}, err
	}
	next := u.Merge(current)
	if err := profile.ValidateTheme(next); err != nil {
		return profile.Theme{}, common.NewValidationAPIError(err.Error())
	}
	if err := s.repo.Save(ctx, slug, next); err != nil {
		return profile.Theme{}, fmt.Errorf("save theme of %q: %w", slug, err)
	}
	s.logger.Info("Theme updated", zap.String("slug", slug), zap.String("accentColor", next.AccentColor), zap.String("fontPreset", next.FontPreset))
	return next, nil
}
