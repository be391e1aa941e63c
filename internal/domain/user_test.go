package domain

import (
	"testing"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/testutil"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_userDomain_GetUser(t *testing.T) {
	ctx := testutil.MockContext()
	userDomain := NewUserDomain(repository.NewUserRepository())

	user, err := testutil.SampleUser(ctx, &entity.User{
		Name:      "ada",
		DailyGoal: 7,
		Timezone:  "Europe/Berlin",
	})
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	resp, err := userDomain.GetUser(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "ada", resp.Name)
	require.Equal(t, 7, resp.DailyGoal)
	require.Equal(t, "Europe/Berlin", resp.Timezone)
}

func Test_userDomain_GetUser_NotFound(t *testing.T) {
	ctx := testutil.MockContextWithUserID("no-such-user")
	userDomain := NewUserDomain(repository.NewUserRepository())

	_, err := userDomain.GetUser(ctx, &model.GetUserRequest{})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_userDomain_UpdateDailyGoal(t *testing.T) {
	ctx := testutil.MockContext()
	userDomain := NewUserDomain(repository.NewUserRepository())

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	_, err = userDomain.UpdateDailyGoal(ctx, &model.UpdateDailyGoalRequest{DailyGoal: 10})
	require.NoError(t, err)

	resp, err := userDomain.GetUser(ctx, &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, 10, resp.DailyGoal)

	_, err = userDomain.UpdateDailyGoal(ctx, &model.UpdateDailyGoalRequest{DailyGoal: 0})
	require.Error(t, err)

	_, err = userDomain.UpdateDailyGoal(ctx, &model.UpdateDailyGoalRequest{DailyGoal: 101})
	require.Error(t, err)
}
