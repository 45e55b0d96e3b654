// File: internal/review/service.go
package review

import (
	"context"
	"fmt"
	"sync"
	"time"

	"teeup_backend/internal/config"

	"go.uber.org/zap"
)

// Service defines the admin review operations.
type Service interface {
	Snapshot(ctx context.Context) Snapshot
	Approve(ctx context.Context, id int64) (Counts, error)
	Reject(ctx context.Context, id int64) (Counts, error)
	SearchApproved(ctx context.Context, q string) []ApprovedPro
	Digest(ctx context.Context) Digest
}

type service struct {
	mu     sync.Mutex
	board  Board
	repo   Repository
	delay  time.Duration
	logger *zap.Logger
}

// NewService loads the board from repo.
func NewService(ctx context.Context, repo Repository, delay time.Duration, logger *zap.Logger) (Service, error) {
	pending, approved, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load review board: %w", err)
	}
	logger.Info("Review board loaded", zap.Int("pending", len(pending)), zap.Int("approved", len(approved)))
	return &service{
		board:  NewBoard(pending, approved),
		repo:   repo,
		delay:  delay,
		logger: logger,
	}, nil
}

// ProvideService wires NewService with ADMIN_REVIEW_DELAY_MS.
func ProvideService(repo Repository, cfg *config.Config, logger *zap.Logger) (Service, error) {
	return NewService(context.Background(), repo, cfg.AdminReviewDelay, logger.Named("ReviewService"))
}

func (s *service) Snapshot(_ context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Pending:       append([]Application{}, s.board.Pending...),
		Processing:    s.board.ProcessingIDs(),
		PendingCount:  len(s.board.Pending),
		ApprovedCount: ApprovedCount(s.board),
	}
}

func (s *service) Approve(ctx context.Context, id int64) (Counts, error) {
	return s.process(ctx, id, "approve", func(b Board) (Board, error) {
		next, pro, err := Approve(b, id)
		if err != nil {
			return b, err
		}
		if err := s.repo.ApplyApproval(ctx, id, pro); err != nil {
			return b, err
		}
		return next, nil
	})
}

func (s *service) Reject(ctx context.Context, id int64) (Counts, error) {
	return s.process(ctx, id, "reject", func(b Board) (Board, error) {
		next, err := Reject(b, id)
		if err != nil {
			return b, err
		}
		if err := s.repo.ApplyRejection(ctx, id); err != nil {
			return b, err
		}
		return next, nil
	})
}

// process marks id in flight, waits the review delay unlocked, then applies the transition.
// The board is only replaced when the repository accepted the change.
func (s *service) process(ctx context.Context, id int64, action string, apply func(Board) (Board, error)) (Counts, error) {
	log := s.logger.With(zap.Int64("applicationID", id), zap.String("action", action))

	s.mu.Lock()
	next, err := BeginProcessing(s.board, id)
	if err != nil {
		s.mu.Unlock()
		log.Debug("Review action refused", zap.Error(err))
		return Counts{}, err
	}
	s.board = next
	s.mu.Unlock()

	if err := s.wait(ctx); err != nil {
		s.mu.Lock()
		s.board = EndProcessing(s.board, id)
		s.mu.Unlock()
		log.Warn("Review action cancelled", zap.Error(err))
		return Counts{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	applied, err := apply(s.board)
	if err != nil {
		s.board = EndProcessing(s.board, id)
		log.Error("Review action failed", zap.Error(err))
		return Counts{}, err
	}
	s.board = applied
	log.Info("Application reviewed", zap.Int("pending", len(s.board.Pending)), zap.Int("approved", ApprovedCount(s.board)))
	return Counts{PendingCount: len(s.board.Pending), ApprovedCount: ApprovedCount(s.board)}, nil
}

func (s *service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *service) SearchApproved(_ context.Context, q string) []ApprovedPro {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FilterApproved(VisibleApproved(s.board), q)
}

func (s *service) Digest(_ context.Context) Digest {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := Digest{PendingCount: len(s.board.Pending)}
	for _, a := range s.board.Pending {
		if d.OldestAppliedAt.IsZero() || a.AppliedAt.Before(d.OldestAppliedAt) {
			d.OldestAppliedAt = a.AppliedAt
		}
	}
	return d
}
