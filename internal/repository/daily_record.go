package repository

import (
	"context"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type DailyRecordRepository interface {
	Get(ctx context.Context, userID string, date time.Time) (*entity.DailyRecord, error)
	Upsert(ctx context.Context, record *entity.DailyRecord) error
	GetRange(ctx context.Context, userID string, from, to time.Time) ([]entity.DailyRecord, error)
	GetMetDays(ctx context.Context, userID string) ([]entity.DailyRecord, error)
	CountMetSince(ctx context.Context, userID string, since time.Time) (int64, error)
	SumMetApplications(ctx context.Context, userID string) (int64, error)
	GetActiveUserIDs(ctx context.Context, since time.Time) ([]string, error)
}

type dailyRecordRepository struct{}

func NewDailyRecordRepository() *dailyRecordRepository {
	return &dailyRecordRepository{}
}

func (r *dailyRecordRepository) Get(
	ctx context.Context, userID string, date time.Time,
) (*entity.DailyRecord, error) {
	var result entity.DailyRecord
	err := xcontext.DB(ctx).
		Where("user_id=? AND date=?", userID, date).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *dailyRecordRepository) Upsert(ctx context.Context, record *entity.DailyRecord) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "date"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"application_count": record.ApplicationCount,
				"goal_met":          record.GoalMet,
			}),
		}).Create(record).Error
}

func (r *dailyRecordRepository) GetRange(
	ctx context.Context, userID string, from, to time.Time,
) ([]entity.DailyRecord, error) {
	var result []entity.DailyRecord
	err := xcontext.DB(ctx).
		Where("user_id=? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dailyRecordRepository) GetMetDays(
	ctx context.Context, userID string,
) ([]entity.DailyRecord, error) {
	var result []entity.DailyRecord
	err := xcontext.DB(ctx).
		Where("user_id=? AND goal_met=?", userID, true).
		Order("date ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *dailyRecordRepository) CountMetSince(
	ctx context.Context, userID string, since time.Time,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.DailyRecord{}).
		Where("user_id=? AND goal_met=? AND date >= ?", userID, true, since).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *dailyRecordRepository) SumMetApplications(
	ctx context.Context, userID string,
) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.DailyRecord{}).
		Select("COALESCE(SUM(application_count), 0)").
		Where("user_id=? AND goal_met=?", userID, true).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *dailyRecordRepository) GetActiveUserIDs(
	ctx context.Context, since time.Time,
) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).
		Model(&entity.DailyRecord{}).
		Distinct("user_id").
		Where("date >= ?", since).
		Pluck("user_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
