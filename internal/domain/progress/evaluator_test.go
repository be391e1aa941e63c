package progress

import (
	"testing"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T, rules ...Rule) *Catalog {
	catalog, err := NewCatalog(rules)
	require.NoError(t, err)
	return catalog
}

func lockedRow(kind entity.AchievementKind, threshold int) entity.AchievementProgress {
	return entity.AchievementProgress{UserID: "user1", Kind: kind, Threshold: threshold}
}

func Test_Evaluate_MultipleThresholdsCrossAtOnce(t *testing.T) {
	catalog := testCatalog(t,
		Rule{Kind: entity.KindApplicationCount, Threshold: 5, Title: "Getting Started"},
		Rule{Kind: entity.KindApplicationCount, Threshold: 10, Title: "Double Digits"},
	)

	rows := []entity.AchievementProgress{
		lockedRow(entity.KindApplicationCount, 5),
		lockedRow(entity.KindApplicationCount, 10),
	}

	now := time.Now()
	updated, newlyUnlocked := Evaluate(Counters{TotalApplications: 10}, rows, catalog, now)

	require.Len(t, newlyUnlocked, 2)
	require.Len(t, updated, 2)
	for _, row := range updated {
		require.True(t, row.Unlocked)
		require.True(t, row.UnlockedAt.Valid)
		require.Equal(t, now, row.UnlockedAt.Time)
		require.Equal(t, 10, row.CurrentProgress)
	}
}

func Test_Evaluate_ProgressWithoutUnlock(t *testing.T) {
	catalog := testCatalog(t,
		Rule{Kind: entity.KindStreak, Threshold: 7, Title: "Week Warrior"},
	)

	updated, newlyUnlocked := Evaluate(
		Counters{CurrentStreak: 3},
		[]entity.AchievementProgress{lockedRow(entity.KindStreak, 7)},
		catalog,
		time.Now(),
	)

	require.Empty(t, newlyUnlocked)
	require.Len(t, updated, 1)
	require.False(t, updated[0].Unlocked)
	require.Equal(t, 3, updated[0].CurrentProgress)
}

func Test_Evaluate_UnlockedRowsAreNeverTouched(t *testing.T) {
	catalog := testCatalog(t,
		Rule{Kind: entity.KindApplicationCount, Threshold: 1, Title: "First Step"},
	)

	row := lockedRow(entity.KindApplicationCount, 1)
	row.Unlocked = true
	row.CurrentProgress = 1

	// The counter regressed below the threshold after unlock. The unlock
	// must survive.
	updated, newlyUnlocked := Evaluate(
		Counters{TotalApplications: 0},
		[]entity.AchievementProgress{row},
		catalog,
		time.Now(),
	)

	require.Empty(t, newlyUnlocked)
	require.Empty(t, updated)
}

func Test_Evaluate_SecondRunUnlocksNothingNew(t *testing.T) {
	catalog := testCatalog(t,
		Rule{Kind: entity.KindDailyApplications, Threshold: 10, Title: "Power Day"},
	)

	counters := Counters{TodayApplications: 12}
	rows := []entity.AchievementProgress{lockedRow(entity.KindDailyApplications, 10)}

	updated, newlyUnlocked := Evaluate(counters, rows, catalog, time.Now())
	require.Len(t, newlyUnlocked, 1)

	// Feed the persisted result back in, as the next evaluation would.
	updated, newlyUnlocked = Evaluate(counters, updated, catalog, time.Now())
	require.Empty(t, newlyUnlocked)
	require.Empty(t, updated)
}

func Test_Evaluate_OrphanedRowIsIgnored(t *testing.T) {
	catalog := testCatalog(t,
		Rule{Kind: entity.KindOfferCount, Threshold: 1, Title: "First Offer"},
	)

	rows := []entity.AchievementProgress{
		lockedRow(entity.KindOfferCount, 1),
		lockedRow(entity.KindOfferCount, 99),
	}

	updated, newlyUnlocked := Evaluate(Counters{TotalOffers: 1}, rows, catalog, time.Now())
	require.Len(t, newlyUnlocked, 1)
	require.Len(t, updated, 1)
	require.Equal(t, 1, updated[0].Threshold)
}

func Test_Evaluate_ConsistencyFollowsStreak(t *testing.T) {
	catalog := testCatalog(t,
		Rule{Kind: entity.KindConsistency, Threshold: 5, Title: "Steady Hand"},
	)

	updated, newlyUnlocked := Evaluate(
		Counters{CurrentStreak: 5},
		[]entity.AchievementProgress{lockedRow(entity.KindConsistency, 5)},
		catalog,
		time.Now(),
	)

	require.Len(t, newlyUnlocked, 1)
	require.Len(t, updated, 1)
	require.True(t, updated[0].Unlocked)
}
