package domain

import (
	"time"

	"github.com/ethantsaox/jobflow/internal/domain/progress"
	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/model"
)

func convertUser(user *entity.User) model.User {
	if user == nil {
		return model.User{}
	}

	return model.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		DailyGoal: user.DailyGoal,
		Timezone:  user.Timezone,
	}
}

func convertApplication(application *entity.JobApplication) model.Application {
	if application == nil {
		return model.Application{}
	}

	return model.Application{
		ID:          application.ID,
		CompanyName: application.CompanyName,
		Position:    application.Position,
		Status:      string(application.Status),
		AppliedAt:   application.AppliedAt.Format(time.RFC3339),
	}
}

// convertAchievement joins a stored progress row with its catalog rule. The
// percentage is capped at 100 even when the live counter overshoots the
// threshold.
func convertAchievement(rule progress.Rule, row *entity.AchievementProgress) model.Achievement {
	achievement := model.Achievement{
		Kind:        string(rule.Kind),
		Threshold:   rule.Threshold,
		Title:       rule.Title,
		Description: rule.Description,
		Icon:        rule.Icon,
		Category:    rule.Category,
		Rarity:      rule.Rarity,
	}

	if row != nil {
		achievement.CurrentProgress = row.CurrentProgress
		achievement.ProgressPercentage = progressPercentage(row.CurrentProgress, rule.Threshold)
		achievement.Unlocked = row.Unlocked
		if row.UnlockedAt.Valid {
			achievement.UnlockedAt = row.UnlockedAt.Time.Format(time.RFC3339)
		}
	}

	return achievement
}

func convertUnlockedRule(rule progress.Rule, at time.Time) model.Achievement {
	return model.Achievement{
		Kind:               string(rule.Kind),
		Threshold:          rule.Threshold,
		Title:              rule.Title,
		Description:        rule.Description,
		Icon:               rule.Icon,
		Category:           rule.Category,
		Rarity:             rule.Rarity,
		CurrentProgress:    rule.Threshold,
		ProgressPercentage: 100,
		Unlocked:           true,
		UnlockedAt:         at.Format(time.RFC3339),
	}
}

func convertMotivation(msg progress.Message, currentStreak, todayCount, dailyGoal int) model.Motivation {
	return model.Motivation{
		Category:      string(msg.Category),
		Message:       msg.Text,
		CurrentStreak: currentStreak,
		TodayProgress: todayCount,
		DailyGoal:     dailyGoal,
	}
}

func progressPercentage(current, threshold int) float64 {
	if threshold <= 0 {
		return 0
	}

	pct := float64(current) / float64(threshold) * 100
	if pct > 100 {
		return 100
	}

	return pct
}
