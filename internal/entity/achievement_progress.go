package entity

import (
	"database/sql"
	"time"
)

type AchievementKind string

const (
	KindApplicationCount  AchievementKind = "application_count"
	KindStreak            AchievementKind = "streak"
	KindInterviewCount    AchievementKind = "interview_count"
	KindOfferCount        AchievementKind = "offer_count"
	KindDailyApplications AchievementKind = "daily_applications"
	KindConsistency       AchievementKind = "consistency"
)

// AchievementProgress is the per-user state of one catalog rule, identified
// by (kind, threshold). Unlocked is a one-way transition; UnlockedAt is set
// exactly once.
type AchievementProgress struct {
	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Kind      AchievementKind `gorm:"primaryKey"`
	Threshold int             `gorm:"primaryKey"`

	CurrentProgress int
	Unlocked        bool
	UnlockedAt      sql.NullTime

	CreatedAt time.Time
	UpdatedAt time.Time
}
