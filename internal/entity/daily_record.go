package entity

import "time"

// DailyRecord holds one row per user per calendar date. Dates with no
// activity have no row at all; readers must treat an absent date as an unmet
// goal.
type DailyRecord struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	// Date is a calendar date, midnight in the user's timezone at the
	// moment it was recorded.
	Date time.Time `gorm:"primaryKey"`

	ApplicationCount int
	GoalMet          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
