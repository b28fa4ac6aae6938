package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
)

// PendingJobs sweeps the approval queues: staged signups and reset
// requests that outlived their TTL are removed so the admin views only
// ever show actionable items.
type PendingJobs struct {
	pendingUserRepo  approval.PendingUserRepository
	pendingResetRepo approval.PendingResetRepository
}

func NewPendingJobs(pendingUserRepo approval.PendingUserRepository, pendingResetRepo approval.PendingResetRepository) *PendingJobs {
	return &PendingJobs{
		pendingUserRepo:  pendingUserRepo,
		pendingResetRepo: pendingResetRepo,
	}
}

func (j *PendingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_expired_pending", 1*time.Hour, j.SweepExpiredPending)
}

func (j *PendingJobs) SweepExpiredPending(ctx context.Context) error {
	cutoff := time.Now().Add(-approval.PendingTTL)

	users, err := j.pendingUserRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to sweep expired signups: %w", err)
	}

	resets, err := j.pendingResetRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to sweep expired resets: %w", err)
	}

	if users > 0 || resets > 0 {
		slog.Info("Cron: Swept expired pending records", "signups", users, "resets", resets)
	}

	return nil
}
