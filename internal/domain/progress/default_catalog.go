package progress

import "github.com/ethantsaox/jobflow/internal/entity"

// DefaultCatalog returns the built-in achievement table. The definitions are
// static; an invalid entry here is a programming error, hence the panic.
func DefaultCatalog() *Catalog {
	catalog, err := NewCatalog(defaultRules)
	if err != nil {
		panic(err)
	}

	return catalog
}

var defaultRules = []Rule{
	// Application count milestones.
	{entity.KindApplicationCount, 1, "First Step", "Applied to your first job", "🎯", "milestone", "common"},
	{entity.KindApplicationCount, 5, "Getting Started", "Applied to 5 jobs", "🚀", "milestone", "common"},
	{entity.KindApplicationCount, 10, "Double Digits", "Applied to 10 jobs", "🔟", "milestone", "uncommon"},
	{entity.KindApplicationCount, 25, "Quarter Century", "Applied to 25 jobs", "💪", "milestone", "uncommon"},
	{entity.KindApplicationCount, 50, "Half Century", "Applied to 50 jobs", "⭐", "milestone", "rare"},
	{entity.KindApplicationCount, 100, "Century Club", "Applied to 100 jobs", "💯", "milestone", "epic"},
	{entity.KindApplicationCount, 200, "Persistent", "Applied to 200 jobs", "🏆", "milestone", "legendary"},
	{entity.KindApplicationCount, 500, "Job Hunter", "Applied to 500 jobs", "👑", "milestone", "mythic"},

	// Streaks.
	{entity.KindStreak, 1, "Streak Starter", "Maintained your goal for 1 day", "🔥", "streak", "common"},
	{entity.KindStreak, 3, "Three Days Strong", "Maintained your goal for 3 consecutive days", "🔥", "streak", "common"},
	{entity.KindStreak, 7, "Week Warrior", "Maintained your goal for 7 consecutive days", "🔥", "streak", "uncommon"},
	{entity.KindStreak, 14, "Two Week Champion", "Maintained your goal for 14 consecutive days", "🔥", "streak", "rare"},
	{entity.KindStreak, 30, "Month Master", "Maintained your goal for 30 consecutive days", "🔥", "streak", "epic"},
	{entity.KindStreak, 60, "Unstoppable", "Maintained your goal for 60 consecutive days", "🔥", "streak", "legendary"},
	{entity.KindStreak, 100, "Streak Legend", "Maintained your goal for 100 consecutive days", "🔥", "streak", "mythic"},

	// Interviews.
	{entity.KindInterviewCount, 1, "First Interview", "Got your first interview", "👔", "milestone", "uncommon"},
	{entity.KindInterviewCount, 5, "Interview Pro", "Got 5 interviews", "👔", "milestone", "rare"},
	{entity.KindInterviewCount, 10, "Interview Expert", "Got 10 interviews", "👔", "milestone", "epic"},

	// Consistency shares the streak signal, displayed as its own category.
	{entity.KindConsistency, 7, "Consistent Applicant", "Applied to jobs 7 days in a row", "📅", "consistency", "uncommon"},
	{entity.KindConsistency, 30, "Monthly Momentum", "Applied to jobs 30 days in a row", "📅", "consistency", "epic"},

	// Offers.
	{entity.KindOfferCount, 1, "First Offer", "Received your first job offer", "💼", "milestone", "rare"},
	{entity.KindOfferCount, 3, "Multiple Offers", "Received 3 job offers", "💼", "milestone", "legendary"},

	// Single-day bursts.
	{entity.KindDailyApplications, 5, "Speed Demon", "Applied to 5 jobs in one day", "⚡", "speed", "uncommon"},
	{entity.KindDailyApplications, 10, "Application Machine", "Applied to 10 jobs in one day", "⚡", "speed", "rare"},
}
