// File: internal/review/repository.go
package review

import (
	"context"
	"fmt"
	"sync"

	"teeup_backend/internal/common"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository defines the persistence operations of the review board.
type Repository interface {
	Load(ctx context.Context) ([]Application, []ApprovedPro, error)
	// ApplyApproval deletes the application and stores pro in one step.
	ApplyApproval(ctx context.Context, applicationID int64, pro ApprovedPro) error
	ApplyRejection(ctx context.Context, applicationID int64) error
}

// ProvideRepository returns the GORM repository when a database is configured,
// otherwise a seeded in-memory one.
func ProvideRepository(db *gorm.DB, logger *zap.Logger) (Repository, error) {
	if db == nil {
		return NewMemoryRepository(SeedApplications(), SeedApprovedPros()), nil
	}
	repo := NewGORMRepository(db)
	if err := repo.Migrate(context.Background()); err != nil {
		return nil, err
	}
	if err := repo.SeedIfEmpty(context.Background(), SeedApplications(), SeedApprovedPros()); err != nil {
		return nil, err
	}
	logger.Info("Review repository ready", zap.String("dialect", db.Dialector.Name()))
	return repo, nil
}

type memoryRepository struct {
	mu       sync.Mutex
	pending  []Application
	approved []ApprovedPro
}

// NewMemoryRepository creates a repository holding the given records in memory.
func NewMemoryRepository(pending []Application, approved []ApprovedPro) Repository {
	return &memoryRepository{
		pending:  append([]Application(nil), pending...),
		approved: append([]ApprovedPro(nil), approved...),
	}
}

func (r *memoryRepository) Load(_ context.Context) ([]Application, []ApprovedPro, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Application(nil), r.pending...), append([]ApprovedPro(nil), r.approved...), nil
}

func (r *memoryRepository) ApplyApproval(_ context.Context, applicationID int64, pro ApprovedPro) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.removeLocked(applicationID) {
		return common.ErrNotFound.WithDetails("Application not found.")
	}
	r.approved = append(r.approved, pro)
	return nil
}

func (r *memoryRepository) ApplyRejection(_ context.Context, applicationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.removeLocked(applicationID) {
		return common.ErrNotFound.WithDetails("Application not found.")
	}
	return nil
}

func (r *memoryRepository) removeLocked(id int64) bool {
	for i, a := range r.pending {
		if a.ID == id {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return true
		}
	}
	return false
}

// GORMRepository stores the board in the pro_applications and approved_pros tables.
type GORMRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM review repository.
func NewGORMRepository(db *gorm.DB) *GORMRepository {
	return &GORMRepository{db: db}
}

// Migrate creates or updates the review tables.
func (r *GORMRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&Application{}, &ApprovedPro{}); err != nil {
		return fmt.Errorf("migrate review tables: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the sample records when both tables are empty.
func (r *GORMRepository) SeedIfEmpty(ctx context.Context, pending []Application, approved []ApprovedPro) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var apps, pros int64
		if err := tx.Model(&Application{}).Count(&apps).Error; err != nil {
			return err
		}
		if err := tx.Model(&ApprovedPro{}).Count(&pros).Error; err != nil {
			return err
		}
		if apps > 0 || pros > 0 {
			return nil
		}
		if len(pending) > 0 {
			if err := tx.Create(&pending).Error; err != nil {
				return fmt.Errorf("seed applications: %w", err)
			}
		}
		if len(approved) > 0 {
			if err := tx.Create(&approved).Error; err != nil {
				return fmt.Errorf("seed approved pros: %w", err)
			}
		}
		return nil
	})
}

func (r *GORMRepository) Load(ctx context.Context) ([]Application, []ApprovedPro, error) {
	var pending []Application
	if err := r.db.WithContext(ctx).Order("applied_at DESC").Find(&pending).Error; err != nil {
		return nil, nil, err
	}
	var approved []ApprovedPro
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&approved).Error; err != nil {
		return nil, nil, err
	}
	return pending, approved, nil
}

func (r *GORMRepository) ApplyApproval(ctx context.Context, applicationID int64, pro ApprovedPro) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteApplication(tx, applicationID); err != nil {
			return err
		}
		return tx.Create(&pro).Error
	})
}

func (r *GORMRepository) ApplyRejection(ctx context.Context, applicationID int64) error {
	return deleteApplication(r.db.WithContext(ctx), applicationID)
}

func deleteApplication(tx *gorm.DB, id int64) error {
	result := tx.Delete(&Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Application not found.")
	}
	return nil
}
