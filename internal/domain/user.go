package domain

import (
	"context"
	"errors"

	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"gorm.io/gorm"
)

const maxDailyGoal = 100

type UserDomain interface {
	GetUser(ctx context.Context, req *model.GetUserRequest) (*model.GetUserResponse, error)
	UpdateDailyGoal(ctx context.Context, req *model.UpdateDailyGoalRequest) (*model.UpdateDailyGoalResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserResponse(convertUser(user))
	return &resp, nil
}

func (d *userDomain) UpdateDailyGoal(
	ctx context.Context, req *model.UpdateDailyGoalRequest,
) (*model.UpdateDailyGoalResponse, error) {
	if req.DailyGoal < 1 || req.DailyGoal > maxDailyGoal {
		return nil, errorx.New(errorx.BadRequest,
			"Daily goal must be between 1 and %d", maxDailyGoal)
	}

	err := d.userRepo.UpdateDailyGoal(ctx, xcontext.RequestUserID(ctx), req.DailyGoal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot update daily goal: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateDailyGoalResponse{}, nil
}
