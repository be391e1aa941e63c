package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type AchievementProgressRepository interface {
	GetAll(ctx context.Context, userID string) ([]entity.AchievementProgress, error)
	GetLocked(ctx context.Context, userID string) ([]entity.AchievementProgress, error)
	CreateMissing(ctx context.Context, rows []entity.AchievementProgress) error
	UpdateProgress(ctx context.Context, userID string, kind entity.AchievementKind, threshold, progress int) error
	Unlock(ctx context.Context, userID string, kind entity.AchievementKind, threshold, progress int, at time.Time) (bool, error)
}

type achievementProgressRepository struct{}

func NewAchievementProgressRepository() *achievementProgressRepository {
	return &achievementProgressRepository{}
}

func (r *achievementProgressRepository) GetAll(
	ctx context.Context, userID string,
) ([]entity.AchievementProgress, error) {
	var result []entity.AchievementProgress
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("threshold ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *achievementProgressRepository) GetLocked(
	ctx context.Context, userID string,
) ([]entity.AchievementProgress, error) {
	var result []entity.AchievementProgress
	err := xcontext.DB(ctx).
		Where("user_id=? AND unlocked=?", userID, false).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CreateMissing inserts progress rows that don't exist yet and leaves
// existing ones untouched, making lazy catalog initialization idempotent.
func (r *achievementProgressRepository) CreateMissing(
	ctx context.Context, rows []entity.AchievementProgress,
) error {
	if len(rows) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rows).Error
}

func (r *achievementProgressRepository) UpdateProgress(
	ctx context.Context, userID string, kind entity.AchievementKind, threshold, progress int,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.AchievementProgress{}).
		Where("user_id=? AND kind=? AND threshold=? AND unlocked=?", userID, kind, threshold, false).
		Update("current_progress", progress)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	return nil
}

// Unlock flips the row to unlocked if and only if it is still locked. The
// boolean result reports whether this call performed the transition, so a
// concurrent evaluation can never announce the same unlock twice.
func (r *achievementProgressRepository) Unlock(
	ctx context.Context, userID string, kind entity.AchievementKind,
	threshold, progress int, at time.Time,
) (bool, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.AchievementProgress{}).
		Where("user_id=? AND kind=? AND threshold=? AND unlocked=?", userID, kind, threshold, false).
		Updates(map[string]any{
			"current_progress": progress,
			"unlocked":         true,
			"unlocked_at":      at,
		})

	if tx.Error != nil {
		return false, tx.Error
	}

	if tx.RowsAffected > 1 {
		return false, errors.New("the number of affected rows is invalid")
	}

	return tx.RowsAffected == 1, nil
}
