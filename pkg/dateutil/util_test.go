package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Date(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	d := Date(time.Date(2024, 3, 10, 23, 59, 59, 0, loc))
	require.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), d)
}

func Test_NextDay_MonthAndYearBoundaries(t *testing.T) {
	require.Equal(t,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		NextDay(time.Date(2024, 1, 31, 15, 0, 0, 0, time.UTC)))

	require.Equal(t,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		NextDay(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))

	// Leap year.
	require.Equal(t,
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		NextDay(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)))
}

func Test_PrevDay(t *testing.T) {
	require.Equal(t,
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		PrevDay(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func Test_NextDay_AcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is the spring-forward date in America/New_York.
	next := NextDay(time.Date(2024, 3, 10, 0, 0, 0, 0, loc))
	require.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, loc), next)
}

func Test_IsConsecutive(t *testing.T) {
	require.True(t, IsConsecutive(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	require.False(t, IsConsecutive(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))

	require.False(t, IsConsecutive(
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func Test_SameDate_IgnoresTimeOfDay(t *testing.T) {
	require.True(t, SameDate(
		time.Date(2024, 1, 1, 0, 0, 1, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)))
}
