package progress

import "fmt"

type MessageCategory string

const (
	CategoryStart          MessageCategory = "start"
	CategoryProgress       MessageCategory = "progress"
	CategoryGoalMet        MessageCategory = "goal_met"
	CategoryMaintainStreak MessageCategory = "maintain_streak"
	CategoryCelebration    MessageCategory = "celebration"
)

type Message struct {
	Category MessageCategory
	Text     string
}

// SelectMessage picks a motivational message from a fixed decision table.
// Branch order matters: the first matching row wins.
func SelectMessage(currentStreak, todayCount, dailyGoal int) Message {
	switch {
	case currentStreak == 0 && todayCount == 0:
		return Message{
			Category: CategoryStart,
			Text:     "Start your streak today! Apply to your first job to begin building momentum. 🚀",
		}

	case currentStreak == 0 && todayCount < dailyGoal:
		remaining := dailyGoal - todayCount
		return Message{
			Category: CategoryProgress,
			Text: fmt.Sprintf("Good progress! Apply to %d more job%s to reach your daily goal. 💪",
				remaining, plural(remaining)),
		}

	case currentStreak == 0:
		return Message{
			Category: CategoryGoalMet,
			Text:     "Great start! You've hit your daily goal. Keep it up tomorrow to start a streak! 🎯",
		}

	case todayCount < dailyGoal:
		remaining := dailyGoal - todayCount
		return Message{
			Category: CategoryMaintainStreak,
			Text: fmt.Sprintf("Don't break your %d-day streak! Apply to %d more job%s today. 🔥",
				currentStreak, remaining, plural(remaining)),
		}

	default:
		return Message{
			Category: CategoryCelebration,
			Text: fmt.Sprintf("Amazing! You're on a %d-day streak and crushing your daily goals! 🏆",
				currentStreak),
		}
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}

	return ""
}
