// File: internal/theme/repository.go
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"teeup_backend/internal/profile"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository stores themes saved through the admin API. Catalog themes are not stored.
type Repository interface {
	Find(ctx context.Context, slug string) (profile.Theme, bool, error)
	Save(ctx context.Context, slug string, t profile.Theme) error
}

// ProvideRepository returns the GORM repository when a database is configured,
// otherwise an in-memory one.
func ProvideRepository(db *gorm.DB, logger *zap.Logger) (Repository, error) {
	if db == nil {
		return NewMemoryRepository(), nil
	}
	repo := NewGORMRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		return nil, err
	}
	logger.Info("Theme repository ready", zap.String("dialect", db.Dialector.Name()))
	return repo, nil
}

type memoryRepository struct {
	mu     sync.RWMutex
	themes map[string]profile.Theme
}

func NewMemoryRepository() Repository {
	return &memoryRepository{themes: make(map[string]profile.Theme)}
}

func (r *memoryRepository) Find(_ context.Context, slug string) (profile.Theme, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[slug]
	return t, ok, nil
}

func (r *memoryRepository) Save(_ context.Context, slug string, t profile.Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.themes[slug] = t
	return nil
}

// GORMRepository stores themes in the pro_themes table.
type GORMRepository struct {
	db *gorm.DB
}

func NewGORMRepository(db *gorm.DB) *GORMRepository {
	return &GORMRepository{db: db}
}

func (r *GORMRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("migrate theme table: %w", err)
	}
	return nil
}

func (r *GORMRepository) Find(ctx context.Context, slug string) (profile.Theme, bool, error) {
	var rec Record
	err := r.db.WithContext(ctx).First(&rec, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return profile.Theme{}, false, nil
	}
	if err != nil {
		return profile.Theme{}, false, err
	}
	return rec.toTheme(), true, nil
}

// Save inserts or replaces the theme of slug.
func (r *GORMRepository) Save(ctx context.Context, slug string, t profile.Theme) error {
	rec := newRecord(slug, t)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(&rec).Error
}
