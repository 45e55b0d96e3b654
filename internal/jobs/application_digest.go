// File: internal/jobs/application_digest.go
package jobs

import (
	"context"
	"time"

	"teeup_backend/internal/config"
	"teeup_backend/internal/review"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DigestSource is the part of the review service the digest job reads.
type DigestSource interface {
	Digest(ctx context.Context) review.Digest
}

// ApplicationDigestJob periodically logs the state of the pending application queue.
type ApplicationDigestJob struct {
	source        DigestSource
	logger        *zap.Logger
	schedule      string
	cronScheduler *cron.Cron
}

// NewApplicationDigestJob creates a new ApplicationDigestJob.
func NewApplicationDigestJob(source review.Service, logger *zap.Logger, cfg *config.Config) *ApplicationDigestJob {
	return &ApplicationDigestJob{
		source:        source,
		logger:        logger.Named("ApplicationDigestJob"),
		schedule:      cfg.AdminDigestSchedule,
		cronScheduler: cronWithLogger(logger),
	}
}

// cronWithLogger skips a run while the previous one is still going.
func cronWithLogger(logger *zap.Logger) *cron.Cron {
	cl := NewCronLogger(logger.Named("cron"))
	return cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl)))
}

// SetupAndStart schedules and starts the cron job.
func (j *ApplicationDigestJob) SetupAndStart() error {
	if j.schedule == "" {
		j.logger.Warn("Application digest schedule not defined (ADMIN_DIGEST_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(j.schedule, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule application digest job", zap.String("spec", j.schedule), zap.Error(err))
		return err
	}

	j.logger.Info("Application digest job scheduled", zap.String("spec", j.schedule), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *ApplicationDigestJob) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	j.Run(ctx)
}

// Run logs one digest entry and returns what it logged.
func (j *ApplicationDigestJob) Run(ctx context.Context) review.Digest {
	d := j.source.Digest(ctx)
	if d.PendingCount == 0 {
		j.logger.Info("No pending pro applications")
		return d
	}
	j.logger.Info("Pending pro applications awaiting review",
		zap.Int("pending", d.PendingCount),
		zap.Time("oldest_applied_at", d.OldestAppliedAt),
		zap.Duration("oldest_waiting", time.Since(d.OldestAppliedAt).Round(time.Minute)),
	)
	return d
}

// Stop gracefully stops the cron scheduler.
func (j *ApplicationDigestJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping application digest scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Application digest scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Application digest scheduler stop timed out.")
	}
}
