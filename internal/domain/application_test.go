package domain

import (
	"testing"

	"github.com/ethantsaox/jobflow/internal/domain/progress"
	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/testutil"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestApplicationDomain() ApplicationDomain {
	orchestrator := progress.NewOrchestrator(
		progress.DefaultCatalog(),
		repository.NewUserRepository(),
		repository.NewJobApplicationRepository(),
		repository.NewDailyRecordRepository(),
		repository.NewAchievementProgressRepository(),
		&testutil.MockPublisher{},
		testutil.NewInMemoryRedisClient(),
	)

	return NewApplicationDomain(repository.NewJobApplicationRepository(), orchestrator)
}

func Test_applicationDomain_RecordApplication(t *testing.T) {
	ctx := testutil.MockContext()
	applicationDomain := newTestApplicationDomain()

	user, err := testutil.SampleUser(ctx, &entity.User{DailyGoal: 2})
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	resp, err := applicationDomain.RecordApplication(ctx, &model.RecordApplicationRequest{
		CompanyName: "Initech",
		Position:    "Backend Engineer",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.False(t, resp.GoalMet)
	require.Equal(t, 0, resp.CurrentStreak)
	require.Equal(t, string(progress.CategoryProgress), resp.Motivation.Category)
	require.Equal(t, 1, resp.Motivation.TodayProgress)
	require.Equal(t, 2, resp.Motivation.DailyGoal)

	titles := []string{}
	for _, a := range resp.NewlyUnlocked {
		titles = append(titles, a.Title)
	}
	require.Equal(t, []string{"First Step"}, titles)

	// The second application meets the goal and flips the motivation.
	resp, err = applicationDomain.RecordApplication(ctx, &model.RecordApplicationRequest{
		CompanyName: "Initech",
		Position:    "Backend Engineer",
	})
	require.NoError(t, err)
	require.True(t, resp.GoalMet)
	require.Equal(t, 1, resp.CurrentStreak)
	require.Equal(t, string(progress.CategoryCelebration), resp.Motivation.Category)
}

func Test_applicationDomain_RecordApplication_RequiresCompany(t *testing.T) {
	ctx := testutil.MockContext()
	applicationDomain := newTestApplicationDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	_, err = applicationDomain.RecordApplication(ctx, &model.RecordApplicationRequest{})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}

func Test_applicationDomain_UpdateApplicationStatus(t *testing.T) {
	ctx := testutil.MockContext()
	applicationDomain := newTestApplicationDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	application, err := testutil.SampleApplication(ctx, user.ID, nil)
	require.NoError(t, err)

	resp, err := applicationDomain.UpdateApplicationStatus(ctx, &model.UpdateApplicationStatusRequest{
		ID:     application.ID,
		Status: string(entity.Interviewed),
	})
	require.NoError(t, err)

	titles := []string{}
	for _, a := range resp.NewlyUnlocked {
		titles = append(titles, a.Title)
	}
	require.Contains(t, titles, "First Interview")

	// Moving backward is not a valid transition.
	_, err = applicationDomain.UpdateApplicationStatus(ctx, &model.UpdateApplicationStatusRequest{
		ID:     application.ID,
		Status: string(entity.Applied),
	})
	require.Error(t, err)

	_, err = applicationDomain.UpdateApplicationStatus(ctx, &model.UpdateApplicationStatusRequest{
		ID:     application.ID,
		Status: string(entity.Offered),
	})
	require.NoError(t, err)

	// Neither is leaving a terminal status.
	_, err = applicationDomain.UpdateApplicationStatus(ctx, &model.UpdateApplicationStatusRequest{
		ID:     application.ID,
		Status: string(entity.Interviewed),
	})
	require.Error(t, err)
}

func Test_applicationDomain_UpdateApplicationStatus_OtherUser(t *testing.T) {
	ctx := testutil.MockContext()
	applicationDomain := newTestApplicationDomain()

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	intruder, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	application, err := testutil.SampleApplication(ctx, owner.ID, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, intruder.ID)
	_, err = applicationDomain.UpdateApplicationStatus(ctx, &model.UpdateApplicationStatusRequest{
		ID:     application.ID,
		Status: string(entity.Interviewed),
	})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.PermissionDenied, errx.Code)
}

func Test_applicationDomain_GetApplications(t *testing.T) {
	ctx := testutil.MockContext()
	applicationDomain := newTestApplicationDomain()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	for i := 0; i < 3; i++ {
		_, err := testutil.SampleApplication(ctx, user.ID, nil)
		require.NoError(t, err)
	}

	// The default limit of the mock configs is 1.
	resp, err := applicationDomain.GetApplications(ctx, &model.GetApplicationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)

	resp, err = applicationDomain.GetApplications(ctx, &model.GetApplicationsRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Applications, 3)

	_, err = applicationDomain.GetApplications(ctx, &model.GetApplicationsRequest{Limit: 51})
	require.Error(t, err)
}
