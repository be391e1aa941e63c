package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/pkg/dateutil"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"gorm.io/gorm"
)

// CountApplicationFilter is the read contract of the event store. A zero Day
// means all days; empty Statuses means any status.
type CountApplicationFilter struct {
	UserID   string
	Statuses []entity.ApplicationStatus
	Day      time.Time
}

type JobApplicationRepository interface {
	Create(ctx context.Context, application *entity.JobApplication) error
	GetByID(ctx context.Context, id string) (*entity.JobApplication, error)
	GetList(ctx context.Context, userID string, offset, limit int) ([]entity.JobApplication, error)
	UpdateStatus(ctx context.Context, id string, status entity.ApplicationStatus) error
	Count(ctx context.Context, filter CountApplicationFilter) (int64, error)
}

type jobApplicationRepository struct{}

func NewJobApplicationRepository() *jobApplicationRepository {
	return &jobApplicationRepository{}
}

func (r *jobApplicationRepository) Create(ctx context.Context, application *entity.JobApplication) error {
	return xcontext.DB(ctx).Create(application).Error
}

func (r *jobApplicationRepository) GetByID(ctx context.Context, id string) (*entity.JobApplication, error) {
	var result entity.JobApplication
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *jobApplicationRepository) GetList(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.JobApplication, error) {
	var result []entity.JobApplication
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("applied_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *jobApplicationRepository) UpdateStatus(
	ctx context.Context, id string, status entity.ApplicationStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.JobApplication{}).
		Where("id=?", id).
		Update("status", status)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *jobApplicationRepository) Count(
	ctx context.Context, filter CountApplicationFilter,
) (int64, error) {
	tx := xcontext.DB(ctx).Model(&entity.JobApplication{})

	if filter.UserID != "" {
		tx = tx.Where("user_id=?", filter.UserID)
	}

	if len(filter.Statuses) > 0 {
		tx = tx.Where("status IN ?", filter.Statuses)
	}

	if !filter.Day.IsZero() {
		day := dateutil.Date(filter.Day)
		tx = tx.Where("applied_at >= ? AND applied_at < ?", day, dateutil.NextDay(day))
	}

	var result int64
	if err := tx.Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
