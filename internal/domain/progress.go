package domain

import (
	"context"
	"errors"
	"time"

	"github.com/ethantsaox/jobflow/internal/common"
	"github.com/ethantsaox/jobflow/internal/domain/progress"
	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/dateutil"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/ethantsaox/jobflow/pkg/xredis"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	maxCalendarDays = 365

	// closeToUnlockingRatio is the progress fraction from which a locked
	// achievement shows up in the almost-there report.
	closeToUnlockingRatio = 0.8

	recentUnlockedLimit  = 5
	closeToUnlockedLimit = 5
)

type ProgressDomain interface {
	GetMyAchievements(ctx context.Context, req *model.GetMyAchievementsRequest) (*model.GetMyAchievementsResponse, error)
	GetAchievementProgress(ctx context.Context, req *model.GetAchievementProgressRequest) (*model.GetAchievementProgressResponse, error)
	GetStreakStats(ctx context.Context, req *model.GetStreakStatsRequest) (*model.GetStreakStatsResponse, error)
	GetStreakCalendar(ctx context.Context, req *model.GetStreakCalendarRequest) (*model.GetStreakCalendarResponse, error)
	GetMotivation(ctx context.Context, req *model.GetMotivationRequest) (*model.GetMotivationResponse, error)
}

type progressDomain struct {
	catalog         *progress.Catalog
	userRepo        repository.UserRepository
	applicationRepo repository.JobApplicationRepository
	dailyRecordRepo repository.DailyRecordRepository
	progressRepo    repository.AchievementProgressRepository
	redisClient     xredis.Client
}

func NewProgressDomain(
	catalog *progress.Catalog,
	userRepo repository.UserRepository,
	applicationRepo repository.JobApplicationRepository,
	dailyRecordRepo repository.DailyRecordRepository,
	progressRepo repository.AchievementProgressRepository,
	redisClient xredis.Client,
) *progressDomain {
	return &progressDomain{
		catalog:         catalog,
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		dailyRecordRepo: dailyRecordRepo,
		progressRepo:    progressRepo,
		redisClient:     redisClient,
	}
}

func (d *progressDomain) GetMyAchievements(
	ctx context.Context, req *model.GetMyAchievementsRequest,
) (*model.GetMyAchievementsResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	if d.redisClient == nil {
		return d.loadAchievementSnapshot(ctx)
	}

	return xredis.CacheAside(
		ctx,
		d.redisClient,
		common.RedisKeyAchievementSnapshot(userID),
		xcontext.Configs(ctx).Progress.SnapshotCacheTTL,
		d.loadAchievementSnapshot,
	)
}

func (d *progressDomain) loadAchievementSnapshot(
	ctx context.Context,
) (*model.GetMyAchievementsResponse, error) {
	rows, err := d.progressRepo.GetAll(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get achievement progress rows: %v", err)
		return nil, errorx.Unknown
	}

	type rowKey struct {
		kind      entity.AchievementKind
		threshold int
	}

	byKey := make(map[rowKey]*entity.AchievementProgress, len(rows))
	for i := range rows {
		byKey[rowKey{rows[i].Kind, rows[i].Threshold}] = &rows[i]
	}

	resp := &model.GetMyAchievementsResponse{
		TotalAchievements: d.catalog.Size(),
		ByCategory:        map[string][]model.Achievement{},
		RecentUnlocked:    []model.Achievement{},
	}

	var unlockedRows []*entity.AchievementProgress
	for _, rule := range d.catalog.Rules() {
		row := byKey[rowKey{rule.Kind, rule.Threshold}]
		achievement := convertAchievement(rule, row)
		resp.ByCategory[rule.Category] = append(resp.ByCategory[rule.Category], achievement)

		if row != nil && row.Unlocked {
			resp.TotalUnlocked++
			unlockedRows = append(unlockedRows, row)
		}
	}

	if resp.TotalAchievements > 0 {
		resp.CompletionPercentage =
			float64(resp.TotalUnlocked) / float64(resp.TotalAchievements) * 100
	}

	slices.SortFunc(unlockedRows, func(a, b *entity.AchievementProgress) bool {
		return a.UnlockedAt.Time.After(b.UnlockedAt.Time)
	})

	for i, row := range unlockedRows {
		if i == recentUnlockedLimit {
			break
		}

		rule, ok := d.catalog.Get(row.Kind, row.Threshold)
		if !ok {
			continue
		}

		resp.RecentUnlocked = append(resp.RecentUnlocked, convertAchievement(rule, row))
	}

	return resp, nil
}

func (d *progressDomain) GetAchievementProgress(
	ctx context.Context, req *model.GetAchievementProgressRequest,
) (*model.GetAchievementProgressResponse, error) {
	rows, err := d.progressRepo.GetLocked(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get locked progress rows: %v", err)
		return nil, errorx.Unknown
	}

	var almost []model.CloseAchievement
	for _, row := range rows {
		rule, ok := d.catalog.Get(row.Kind, row.Threshold)
		if !ok {
			continue
		}

		pct := progressPercentage(row.CurrentProgress, rule.Threshold)
		if pct < closeToUnlockingRatio*100 {
			continue
		}

		almost = append(almost, model.CloseAchievement{
			Title:              rule.Title,
			Description:        rule.Description,
			Icon:               rule.Icon,
			CurrentProgress:    row.CurrentProgress,
			Threshold:          rule.Threshold,
			ProgressPercentage: pct,
			Remaining:          rule.Threshold - row.CurrentProgress,
		})
	}

	slices.SortFunc(almost, func(a, b model.CloseAchievement) bool {
		return a.ProgressPercentage > b.ProgressPercentage
	})

	if len(almost) > closeToUnlockedLimit {
		almost = almost[:closeToUnlockedLimit]
	}

	if almost == nil {
		almost = []model.CloseAchievement{}
	}

	return &model.GetAchievementProgressResponse{
		CloseToUnlocking: almost,
		TotalPending:     len(rows),
	}, nil
}

func (d *progressDomain) GetStreakStats(
	ctx context.Context, req *model.GetStreakStatsRequest,
) (*model.GetStreakStatsResponse, error) {
	user, today, err := d.userToday(ctx)
	if err != nil {
		return nil, err
	}

	metDays, err := d.dailyRecordRepo.GetMetDays(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get goal-met days: %v", err)
		return nil, errorx.Unknown
	}

	metLast30, err := d.dailyRecordRepo.CountMetSince(ctx, user.ID, today.AddDate(0, 0, -30))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count goal-met days: %v", err)
		return nil, errorx.Unknown
	}

	sumMet, err := d.dailyRecordRepo.SumMetApplications(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum goal-met applications: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetStreakStatsResponse{
		CurrentStreak:      progress.CurrentStreak(metDays, today),
		LongestStreak:      progress.LongestStreak(metDays),
		GoalsMetLast30Days: int(metLast30),
		TotalStreakDays:    len(metDays),
	}

	if len(metDays) > 0 {
		resp.AverageAppsPerStreakDay = float64(sumMet) / float64(len(metDays))
	}

	return resp, nil
}

func (d *progressDomain) GetStreakCalendar(
	ctx context.Context, req *model.GetStreakCalendarRequest,
) (*model.GetStreakCalendarResponse, error) {
	days := req.Days
	if days == 0 {
		days = xcontext.Configs(ctx).Progress.CalendarDays
	}

	if days < 1 || days > maxCalendarDays {
		return nil, errorx.New(errorx.BadRequest,
			"Days must be between 1 and %d", maxCalendarDays)
	}

	user, today, err := d.userToday(ctx)
	if err != nil {
		return nil, err
	}

	from := today.AddDate(0, 0, -(days - 1))
	records, err := d.dailyRecordRepo.GetRange(ctx, user.ID, from, today)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get daily records: %v", err)
		return nil, errorx.Unknown
	}

	recordByDate := make(map[string]*entity.DailyRecord, len(records))
	for i := range records {
		recordByDate[records[i].Date.Format(time.DateOnly)] = &records[i]
	}

	// Every calendar day appears in the response; days without a record are
	// explicit zero entries rather than gaps.
	resp := &model.GetStreakCalendarResponse{Days: make([]model.CalendarDay, 0, days)}
	for day := from; !day.After(today); day = dateutil.NextDay(day) {
		date := day.Format(time.DateOnly)
		calendarDay := model.CalendarDay{Date: date}
		if record, ok := recordByDate[date]; ok {
			calendarDay.Applications = record.ApplicationCount
			calendarDay.GoalMet = record.GoalMet
			calendarDay.HasData = true
		}

		resp.Days = append(resp.Days, calendarDay)
	}

	return resp, nil
}

func (d *progressDomain) GetMotivation(
	ctx context.Context, req *model.GetMotivationRequest,
) (*model.GetMotivationResponse, error) {
	user, today, err := d.userToday(ctx)
	if err != nil {
		return nil, err
	}

	todayCount, err := d.applicationRepo.Count(ctx, repository.CountApplicationFilter{
		UserID: user.ID,
		Day:    today,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count today applications: %v", err)
		return nil, errorx.Unknown
	}

	metDays, err := d.dailyRecordRepo.GetMetDays(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get goal-met days: %v", err)
		return nil, errorx.Unknown
	}

	currentStreak := progress.CurrentStreak(metDays, today)
	msg := progress.SelectMessage(currentStreak, int(todayCount), user.DailyGoal)

	resp := model.GetMotivationResponse(
		convertMotivation(msg, currentStreak, int(todayCount), user.DailyGoal))
	return &resp, nil
}

func (d *progressDomain) userToday(ctx context.Context) (*entity.User, time.Time, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, time.Time{}, errorx.Unknown
	}

	loc := time.UTC
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
		}
	}

	return user, dateutil.Today(loc), nil
}
