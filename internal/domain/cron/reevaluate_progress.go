package cron

import (
	"context"
	"time"

	"github.com/ethantsaox/jobflow/internal/domain/progress"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/dateutil"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"golang.org/x/sync/errgroup"
)

const reevaluateConcurrency = 8

// ReevaluateProgressCronJob re-runs the evaluation for recently active users
// once per day. Day rollover changes streaks and daily counters without any
// new event, so unlocks earned at midnight would otherwise wait for the
// user's next action.
type ReevaluateProgressCronJob struct {
	dailyRecordRepo repository.DailyRecordRepository
	orchestrator    *progress.Orchestrator
}

func NewReevaluateProgressCronJob(
	dailyRecordRepo repository.DailyRecordRepository,
	orchestrator *progress.Orchestrator,
) *ReevaluateProgressCronJob {
	return &ReevaluateProgressCronJob{
		dailyRecordRepo: dailyRecordRepo,
		orchestrator:    orchestrator,
	}
}

func (job *ReevaluateProgressCronJob) Do(ctx context.Context) {
	window := xcontext.Configs(ctx).Progress.ReevaluateWindow
	if window == 0 {
		window = 30 * 24 * time.Hour
	}

	userIDs, err := job.dailyRecordRepo.GetActiveUserIDs(ctx, time.Now().Add(-window))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get active users to re-evaluate: %v", err)
		return
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(reevaluateConcurrency)
	for _, userID := range userIDs {
		userID := userID
		group.Go(func() error {
			if _, err := job.orchestrator.Process(groupCtx, userID); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot re-evaluate user %s: %v", userID, err)
			}

			// A failed user must not cancel the others.
			return nil
		})
	}

	_ = group.Wait()
	xcontext.Logger(ctx).Infof("Re-evaluated progress of %d users", len(userIDs))
}

func (job *ReevaluateProgressCronJob) RunNow() bool {
	return false
}

func (job *ReevaluateProgressCronJob) Next() time.Time {
	return dateutil.NextDay(time.Now())
}
