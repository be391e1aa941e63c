package progress

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ethantsaox/jobflow/internal/common"
	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/dateutil"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/pubsub"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/ethantsaox/jobflow/pkg/xredis"
	"github.com/puzpuzpuz/xsync"
)

const UnlockedTopic = "achievement-unlocked"

// UnlockedEvent is the payload published for every fresh unlock. Delivery to
// the user is the notification service's problem, not ours.
type UnlockedEvent struct {
	UserID     string `json:"user_id"`
	Kind       string `json:"kind"`
	Threshold  int    `json:"threshold"`
	Title      string `json:"title"`
	Icon       string `json:"icon"`
	Rarity     string `json:"rarity"`
	UnlockedAt string `json:"unlocked_at"`
}

// Result is the outcome of one evaluation pass.
type Result struct {
	Counters      Counters
	Record        entity.DailyRecord
	DailyGoal     int
	NewlyUnlocked []Rule
}

// Orchestrator runs the read-increment-evaluate-write sequence after a new
// activity event. It is the only component of the engine with side effects.
type Orchestrator struct {
	catalog *Catalog

	userRepo        repository.UserRepository
	applicationRepo repository.JobApplicationRepository
	dailyRecordRepo repository.DailyRecordRepository
	progressRepo    repository.AchievementProgressRepository

	publisher   pubsub.Publisher
	redisClient xredis.Client

	// userLocks serializes evaluations per user; two concurrent events for
	// the same user must not interleave between reading today's count and
	// writing the unlock rows.
	userLocks *xsync.MapOf[string, *sync.Mutex]
}

func NewOrchestrator(
	catalog *Catalog,
	userRepo repository.UserRepository,
	applicationRepo repository.JobApplicationRepository,
	dailyRecordRepo repository.DailyRecordRepository,
	progressRepo repository.AchievementProgressRepository,
	publisher pubsub.Publisher,
	redisClient xredis.Client,
) *Orchestrator {
	return &Orchestrator{
		catalog:         catalog,
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		dailyRecordRepo: dailyRecordRepo,
		progressRepo:    progressRepo,
		publisher:       publisher,
		redisClient:     redisClient,
		userLocks:       xsync.NewMapOf[*sync.Mutex](),
	}
}

// Process recomputes today's daily record and all counters for the user,
// evaluates the catalog, and persists the outcome. It is idempotent: every
// counter is re-derived from the event store, never incremented in place, so
// calling it again without a new event changes nothing and unlocks nothing.
func (o *Orchestrator) Process(ctx context.Context, userID string) (*Result, error) {
	mutex, _ := o.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mutex.Lock()
	defer mutex.Unlock()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	user, err := o.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user for evaluation: %v", err)
		return nil, errorx.Unknown
	}

	today := dateutil.Today(userLocation(user))

	record, counters, err := o.refreshDailyRecord(ctx, user, today)
	if err != nil {
		return nil, err
	}

	if err := o.ensureProgressRows(ctx, userID); err != nil {
		return nil, err
	}

	lockedRows, err := o.progressRepo.GetLocked(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get locked progress rows: %v", err)
		return nil, errorx.Unknown
	}

	updated, _ := Evaluate(counters, lockedRows, o.catalog, time.Now())

	var newlyUnlocked []Rule
	for _, row := range updated {
		if !row.Unlocked {
			err := o.progressRepo.UpdateProgress(
				ctx, userID, row.Kind, row.Threshold, row.CurrentProgress)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot update achievement progress: %v", err)
				return nil, errorx.Unknown
			}

			continue
		}

		// The conditional unlock is the cross-process backstop: if another
		// evaluation already flipped this row, we must not announce it again.
		won, err := o.progressRepo.Unlock(
			ctx, userID, row.Kind, row.Threshold, row.CurrentProgress, row.UnlockedAt.Time)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot unlock achievement: %v", err)
			return nil, errorx.Unknown
		}

		if won {
			rule, _ := o.catalog.Get(row.Kind, row.Threshold)
			newlyUnlocked = append(newlyUnlocked, rule)
		}
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	o.afterCommit(ctx, user, newlyUnlocked)

	return &Result{
		Counters:      counters,
		Record:        *record,
		DailyGoal:     user.DailyGoal,
		NewlyUnlocked: newlyUnlocked,
	}, nil
}

// refreshDailyRecord upserts today's record from the event store and builds
// the counter snapshot.
func (o *Orchestrator) refreshDailyRecord(
	ctx context.Context, user *entity.User, today time.Time,
) (*entity.DailyRecord, Counters, error) {
	todayCount, err := o.applicationRepo.Count(ctx, repository.CountApplicationFilter{
		UserID: user.ID,
		Day:    today,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count today applications: %v", err)
		return nil, Counters{}, errorx.Unknown
	}

	record := &entity.DailyRecord{
		UserID:           user.ID,
		Date:             today,
		ApplicationCount: int(todayCount),
		GoalMet:          user.DailyGoal > 0 && int(todayCount) >= user.DailyGoal,
	}

	if err := o.dailyRecordRepo.Upsert(ctx, record); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert daily record: %v", err)
		return nil, Counters{}, errorx.Unknown
	}

	metDays, err := o.dailyRecordRepo.GetMetDays(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get goal-met days: %v", err)
		return nil, Counters{}, errorx.Unknown
	}

	totalApplications, err := o.applicationRepo.Count(ctx, repository.CountApplicationFilter{
		UserID: user.ID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count applications: %v", err)
		return nil, Counters{}, errorx.Unknown
	}

	totalInterviews, err := o.applicationRepo.Count(ctx, repository.CountApplicationFilter{
		UserID:   user.ID,
		Statuses: entity.InterviewedStatuses,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count interviews: %v", err)
		return nil, Counters{}, errorx.Unknown
	}

	totalOffers, err := o.applicationRepo.Count(ctx, repository.CountApplicationFilter{
		UserID:   user.ID,
		Statuses: []entity.ApplicationStatus{entity.Offered},
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count offers: %v", err)
		return nil, Counters{}, errorx.Unknown
	}

	counters := Counters{
		TotalApplications: int(totalApplications),
		TotalInterviews:   int(totalInterviews),
		TotalOffers:       int(totalOffers),
		TodayApplications: int(todayCount),
		CurrentStreak:     CurrentStreak(metDays, today),
	}

	return record, counters, nil
}

// ensureProgressRows lazily creates one progress row per catalog rule. A
// user evaluated for the first time is not an error condition.
func (o *Orchestrator) ensureProgressRows(ctx context.Context, userID string) error {
	rows := make([]entity.AchievementProgress, 0, o.catalog.Size())
	for _, rule := range o.catalog.Rules() {
		rows = append(rows, entity.AchievementProgress{
			UserID:    userID,
			Kind:      rule.Kind,
			Threshold: rule.Threshold,
		})
	}

	if err := o.progressRepo.CreateMissing(ctx, rows); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot initialize progress rows: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (o *Orchestrator) afterCommit(ctx context.Context, user *entity.User, newlyUnlocked []Rule) {
	if len(newlyUnlocked) > 0 && o.publisher != nil {
		for _, rule := range newlyUnlocked {
			event := UnlockedEvent{
				UserID:     user.ID,
				Kind:       string(rule.Kind),
				Threshold:  rule.Threshold,
				Title:      rule.Title,
				Icon:       rule.Icon,
				Rarity:     rule.Rarity,
				UnlockedAt: time.Now().Format(time.RFC3339),
			}

			msg, err := json.Marshal(event)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot marshal unlocked event: %v", err)
				continue
			}

			pack := &pubsub.Pack{Key: []byte(user.ID), Msg: msg}
			if err := o.publisher.Publish(ctx, UnlockedTopic, pack); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot publish unlocked event: %v", err)
			}
		}
	}

	if o.redisClient != nil {
		key := common.RedisKeyAchievementSnapshot(user.ID)
		if err := o.redisClient.Del(ctx, key); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot invalidate snapshot cache: %v", err)
		}
	}
}

func userLocation(user *entity.User) *time.Location {
	if user.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
