package model

type Achievement struct {
	Kind               string  `json:"kind"`
	Threshold          int     `json:"threshold"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Icon               string  `json:"icon"`
	Category           string  `json:"category"`
	Rarity             string  `json:"rarity"`
	CurrentProgress    int     `json:"current_progress"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Unlocked           bool    `json:"unlocked"`
	UnlockedAt         string  `json:"unlocked_at,omitempty"`
}

type Motivation struct {
	Category      string `json:"category"`
	Message       string `json:"message"`
	CurrentStreak int    `json:"current_streak"`
	TodayProgress int    `json:"today_progress"`
	DailyGoal     int    `json:"daily_goal"`
}

type GetMyAchievementsRequest struct{}

type GetMyAchievementsResponse struct {
	TotalAchievements    int                      `json:"total_achievements"`
	TotalUnlocked        int                      `json:"total_unlocked"`
	CompletionPercentage float64                  `json:"completion_percentage"`
	ByCategory           map[string][]Achievement `json:"by_category"`
	RecentUnlocked       []Achievement            `json:"recent_unlocked"`
}

type CloseAchievement struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Icon               string  `json:"icon"`
	CurrentProgress    int     `json:"current_progress"`
	Threshold          int     `json:"threshold"`
	ProgressPercentage float64 `json:"progress_percentage"`
	Remaining          int     `json:"remaining"`
}

type GetAchievementProgressRequest struct{}

type GetAchievementProgressResponse struct {
	CloseToUnlocking []CloseAchievement `json:"close_to_unlocking"`
	TotalPending     int                `json:"total_pending"`
}

type GetStreakStatsRequest struct{}

type GetStreakStatsResponse struct {
	CurrentStreak           int     `json:"current_streak"`
	LongestStreak           int     `json:"longest_streak"`
	GoalsMetLast30Days      int     `json:"goals_met_last_30_days"`
	TotalStreakDays         int     `json:"total_streak_days"`
	AverageAppsPerStreakDay float64 `json:"average_apps_per_streak_day"`
}

type CalendarDay struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	GoalMet      bool   `json:"goal_met"`
	HasData      bool   `json:"has_data"`
}

type GetStreakCalendarRequest struct {
	Days int `json:"days" form:"days"`
}

type GetStreakCalendarResponse struct {
	Days []CalendarDay `json:"days"`
}

type GetMotivationRequest struct{}

type GetMotivationResponse Motivation
