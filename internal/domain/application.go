package domain

import (
	"context"
	"errors"
	"time"

	"github.com/ethantsaox/jobflow/internal/domain/progress"
	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// allowedTransitions maps a status to the statuses it may move to. Terminal
// statuses have no outgoing edges.
var allowedTransitions = map[entity.ApplicationStatus][]entity.ApplicationStatus{
	entity.Applied:     {entity.Interviewed, entity.Offered, entity.Rejected},
	entity.Interviewed: {entity.Offered, entity.Rejected},
}

type ApplicationDomain interface {
	RecordApplication(ctx context.Context, req *model.RecordApplicationRequest) (*model.RecordApplicationResponse, error)
	UpdateApplicationStatus(ctx context.Context, req *model.UpdateApplicationStatusRequest) (*model.UpdateApplicationStatusResponse, error)
	GetApplications(ctx context.Context, req *model.GetApplicationsRequest) (*model.GetApplicationsResponse, error)
}

type applicationDomain struct {
	applicationRepo repository.JobApplicationRepository
	orchestrator    *progress.Orchestrator
}

func NewApplicationDomain(
	applicationRepo repository.JobApplicationRepository,
	orchestrator *progress.Orchestrator,
) *applicationDomain {
	return &applicationDomain{
		applicationRepo: applicationRepo,
		orchestrator:    orchestrator,
	}
}

func (d *applicationDomain) RecordApplication(
	ctx context.Context, req *model.RecordApplicationRequest,
) (*model.RecordApplicationResponse, error) {
	if req.CompanyName == "" {
		return nil, errorx.New(errorx.BadRequest, "Company name is required")
	}

	userID := xcontext.RequestUserID(ctx)
	application := &entity.JobApplication{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		CompanyName: req.CompanyName,
		Position:    req.Position,
		Status:      entity.Applied,
		AppliedAt:   time.Now(),
	}

	if err := d.applicationRepo.Create(ctx, application); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create application: %v", err)
		return nil, errorx.Unknown
	}

	result, err := d.orchestrator.Process(ctx, userID)
	if err != nil {
		return nil, err
	}

	msg := progress.SelectMessage(
		result.Counters.CurrentStreak,
		result.Counters.TodayApplications,
		result.DailyGoal,
	)

	return &model.RecordApplicationResponse{
		ID:            application.ID,
		CurrentStreak: result.Counters.CurrentStreak,
		GoalMet:       result.Record.GoalMet,
		NewlyUnlocked: convertNewlyUnlocked(result.NewlyUnlocked),
		Motivation: convertMotivation(
			msg,
			result.Counters.CurrentStreak,
			result.Counters.TodayApplications,
			result.DailyGoal,
		),
	}, nil
}

func (d *applicationDomain) UpdateApplicationStatus(
	ctx context.Context, req *model.UpdateApplicationStatusRequest,
) (*model.UpdateApplicationStatusResponse, error) {
	newStatus := entity.ApplicationStatus(req.Status)

	application, err := d.applicationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found application")
		}

		xcontext.Logger(ctx).Errorf("Cannot get application: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if application.UserID != userID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if !isAllowedTransition(application.Status, newStatus) {
		return nil, errorx.New(errorx.BadRequest,
			"Cannot change status from %s to %s", application.Status, newStatus)
	}

	if err := d.applicationRepo.UpdateStatus(ctx, req.ID, newStatus); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update application status: %v", err)
		return nil, errorx.Unknown
	}

	// Interview and offer counters may have moved, so achievements must be
	// re-evaluated even though no new daily activity happened.
	result, err := d.orchestrator.Process(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.UpdateApplicationStatusResponse{
		NewlyUnlocked: convertNewlyUnlocked(result.NewlyUnlocked),
	}, nil
}

func (d *applicationDomain) GetApplications(
	ctx context.Context, req *model.GetApplicationsRequest,
) (*model.GetApplicationsResponse, error) {
	if req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset must be non-negative")
	}

	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	applications, err := d.applicationRepo.GetList(
		ctx, xcontext.RequestUserID(ctx), req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get applications: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetApplicationsResponse{Applications: []model.Application{}}
	for i := range applications {
		resp.Applications = append(resp.Applications, convertApplication(&applications[i]))
	}

	return resp, nil
}

func isAllowedTransition(from, to entity.ApplicationStatus) bool {
	for _, status := range allowedTransitions[from] {
		if status == to {
			return true
		}
	}

	return false
}

func convertNewlyUnlocked(rules []progress.Rule) []model.Achievement {
	now := time.Now()
	unlocked := []model.Achievement{}
	for _, rule := range rules {
		unlocked = append(unlocked, convertUnlockedRule(rule, now))
	}

	return unlocked
}
