package progress

import (
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/pkg/dateutil"
	"golang.org/x/exp/slices"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

// CurrentStreak counts consecutive goal-met days walking backward from
// today. A missing or unmet record for any day, including today itself,
// ends the walk: a user who hasn't met today's goal yet always reads as
// streak 0. Records need not be contiguous; absent dates count as unmet.
//
// today must be a well-formed calendar date in the caller's chosen timezone;
// passing a zero time is a precondition violation.
func CurrentStreak(records []entity.DailyRecord, today time.Time) int {
	met := make(map[dayKey]bool, len(records))
	for _, record := range records {
		if record.GoalMet {
			met[keyOf(record.Date)] = true
		}
	}

	count := 0
	for day := dateutil.Date(today); met[keyOf(day)]; day = dateutil.PrevDay(day) {
		count++
	}

	return count
}

// LongestStreak returns the length of the longest run of goal-met days with
// each date exactly one calendar day after the previous. A single isolated
// met day is a streak of length 1; no met day at all is 0.
func LongestStreak(records []entity.DailyRecord) int {
	var metDays []time.Time
	for _, record := range records {
		if record.GoalMet {
			metDays = append(metDays, dateutil.Date(record.Date))
		}
	}

	if len(metDays) == 0 {
		return 0
	}

	slices.SortFunc(metDays, func(a, b time.Time) bool { return a.Before(b) })

	longest, current := 1, 1
	for i := 1; i < len(metDays); i++ {
		if dateutil.IsConsecutive(metDays[i-1], metDays[i]) {
			current++
			if current > longest {
				longest = current
			}
		} else if !dateutil.SameDate(metDays[i-1], metDays[i]) {
			current = 1
		}
	}

	return longest
}
