package progress

import (
	"database/sql"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
)

// Counters is a point-in-time snapshot of the signals achievements are
// evaluated against. All values are recomputed from the event store, never
// accumulated, so evaluation stays idempotent.
type Counters struct {
	TotalApplications int
	TotalInterviews   int
	TotalOffers       int
	TodayApplications int
	CurrentStreak     int
}

func (c Counters) valueOf(kind entity.AchievementKind) int {
	switch kind {
	case entity.KindApplicationCount:
		return c.TotalApplications
	case entity.KindInterviewCount:
		return c.TotalInterviews
	case entity.KindOfferCount:
		return c.TotalOffers
	case entity.KindDailyApplications:
		return c.TodayApplications
	case entity.KindStreak, entity.KindConsistency:
		return c.CurrentStreak
	}

	// Unknown kinds are rejected at catalog load; reaching this is a
	// programming error.
	panic("unmapped achievement kind: " + string(kind))
}

// Evaluate compares counters against every still-locked progress row and
// returns the rows that changed together with the rules newly crossing
// their threshold. Rows already unlocked are left untouched. The function
// is pure: identical inputs produce identical outputs, and running it twice
// reports a non-empty newly-unlocked set at most once because the first run's
// persisted rows arrive unlocked on the second.
func Evaluate(
	counters Counters,
	rows []entity.AchievementProgress,
	catalog *Catalog,
	now time.Time,
) (updated []entity.AchievementProgress, newlyUnlocked []Rule) {
	for _, row := range rows {
		if row.Unlocked {
			continue
		}

		rule, ok := catalog.Get(row.Kind, row.Threshold)
		if !ok {
			// A row orphaned by a catalog change; nothing to compare
			// against, leave it as is.
			continue
		}

		value := counters.valueOf(row.Kind)
		row.CurrentProgress = value

		if value >= row.Threshold {
			row.Unlocked = true
			row.UnlockedAt = sql.NullTime{Valid: true, Time: now}
			newlyUnlocked = append(newlyUnlocked, rule)
		}

		updated = append(updated, row)
	}

	return updated, newlyUnlocked
}
