package progress

import (
	"testing"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t
}

func metRecord(date string) entity.DailyRecord {
	return entity.DailyRecord{Date: day(date), GoalMet: true, ApplicationCount: 5}
}

func unmetRecord(date string) entity.DailyRecord {
	return entity.DailyRecord{Date: day(date), GoalMet: false, ApplicationCount: 1}
}

func Test_CurrentStreak(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		require.Equal(t, 0, CurrentStreak(nil, day("2024-01-04")))
	})

	t.Run("gap resets the walk", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-01"),
			metRecord("2024-01-02"),
			metRecord("2024-01-04"),
		}

		require.Equal(t, 1, CurrentStreak(records, day("2024-01-04")))
	})

	t.Run("today not met means zero", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-01"),
			metRecord("2024-01-02"),
			metRecord("2024-01-03"),
			unmetRecord("2024-01-04"),
		}

		require.Equal(t, 0, CurrentStreak(records, day("2024-01-04")))
	})

	t.Run("unbroken run ending today", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-02"),
			metRecord("2024-01-03"),
			metRecord("2024-01-04"),
		}

		require.Equal(t, 3, CurrentStreak(records, day("2024-01-04")))
	})

	t.Run("unmet day between met days breaks the run", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-02"),
			unmetRecord("2024-01-03"),
			metRecord("2024-01-04"),
		}

		require.Equal(t, 1, CurrentStreak(records, day("2024-01-04")))
	})

	t.Run("month boundary", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-31"),
			metRecord("2024-02-01"),
		}

		require.Equal(t, 2, CurrentStreak(records, day("2024-02-01")))
	})
}

func Test_LongestStreak(t *testing.T) {
	t.Run("no records", func(t *testing.T) {
		require.Equal(t, 0, LongestStreak(nil))
	})

	t.Run("single met day", func(t *testing.T) {
		require.Equal(t, 1, LongestStreak([]entity.DailyRecord{metRecord("2024-01-01")}))
	})

	t.Run("longest run is in the past", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-01"),
			metRecord("2024-01-02"),
			metRecord("2024-01-04"),
		}

		require.Equal(t, 2, LongestStreak(records))
	})

	t.Run("unsorted input", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-04"),
			metRecord("2024-01-02"),
			metRecord("2024-01-03"),
			metRecord("2024-01-10"),
		}

		require.Equal(t, 3, LongestStreak(records))
	})

	t.Run("unmet records do not contribute", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-01-01"),
			unmetRecord("2024-01-02"),
			metRecord("2024-01-03"),
		}

		require.Equal(t, 1, LongestStreak(records))
	})

	t.Run("leap february", func(t *testing.T) {
		records := []entity.DailyRecord{
			metRecord("2024-02-28"),
			metRecord("2024-02-29"),
			metRecord("2024-03-01"),
		}

		require.Equal(t, 3, LongestStreak(records))
	})
}
