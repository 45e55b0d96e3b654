package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"teeup_backend/internal/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type staticDigest review.Digest

func (s staticDigest) Digest(context.Context) review.Digest { return review.Digest(s) }

func newJob(source DigestSource, schedule string) (*ApplicationDigestJob, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	j := &ApplicationDigestJob{source: source, logger: logger, schedule: schedule}
	return j, logs
}

func TestRun_LogsPendingQueue(t *testing.T) {
	oldest := time.Date(2025, time.November, 22, 7, 45, 0, 0, time.UTC)
	j, logs := newJob(staticDigest{PendingCount: 3, OldestAppliedAt: oldest}, "@daily")

	d := j.Run(context.Background())
	assert.Equal(t, 3, d.PendingCount)

	entries := logs.FilterMessage("Pending pro applications awaiting review").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["pending"])
}

func TestRun_EmptyQueue(t *testing.T) {
	j, logs := newJob(staticDigest{}, "@daily")
	j.Run(context.Background())
	assert.Equal(t, 1, logs.FilterMessage("No pending pro applications").Len())
}

func TestSetupAndStart(t *testing.T) {
	j := newScheduledJob(staticDigest{}, "@every 1h")
	require.NoError(t, j.SetupAndStart())
	assert.Len(t, j.cronScheduler.Entries(), 1)
	j.Stop()

	bad := newScheduledJob(staticDigest{}, "not a cron spec")
	assert.Error(t, bad.SetupAndStart())

	none := newScheduledJob(staticDigest{}, "")
	assert.NoError(t, none.SetupAndStart())
	assert.Empty(t, none.cronScheduler.Entries())
}

func newScheduledJob(source DigestSource, schedule string) *ApplicationDigestJob {
	logger := zap.NewNop()
	return &ApplicationDigestJob{
		source:        source,
		logger:        logger,
		schedule:      schedule,
		cronScheduler: cronWithLogger(logger),
	}
}

func TestCronLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cl := NewCronLogger(zap.New(core))
	cl.Info("tick", "entry", 1, "dangling")
	cl.Error(errors.New("boom"), "failed", "entry", 2)

	all := logs.All()
	require.Len(t, all, 2)
	assert.Equal(t, "MISSING_VALUE", all[0].ContextMap()["dangling"])
	assert.Equal(t, "boom", all[1].ContextMap()["error"])
}
