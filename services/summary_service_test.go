package services_test

import (
	"testing"
	"time"

	"github.com/otterable/minifitna/services"

	"github.com/stretchr/testify/require"
)

const summaryToday = "2026-08-29"

func summaryFixture(t *testing.T) (*services.RecordService, *services.SummaryService, uint) {
	t.Helper()
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	records := services.NewRecordService(db)
	records.Now = fixedClock(summaryToday)
	summaries := services.NewSummaryService(db)
	summaries.Now = fixedClock(summaryToday)

	return records, summaries, user.ID
}

func dayOffset(offset int) string {
	ts, _ := time.Parse(services.DayFormat, summaryToday)
	return ts.AddDate(0, 0, offset).Format(services.DayFormat)
}

func TestSummaryEmptyUser(t *testing.T) {
	_, summaries, userID := summaryFixture(t)

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.Nil(t, s.LatestWeight)
	require.Nil(t, s.LatestWeightDay)
	require.Nil(t, s.DeltaToTarget)
	require.Equal(t, 0.0, s.Run7dKm)
	require.Equal(t, 0, s.WeighStreak)
	require.Equal(t, 0, s.RunStreak)
	require.Equal(t, 10.0, s.DailyRunGoalKm)
}

func TestSummaryLatestWeightAndDelta(t *testing.T) {
	records, summaries, userID := summaryFixture(t)

	_, err := records.UpsertWeight(userID, dayOffset(-5), 92)
	require.NoError(t, err)
	_, err = records.UpsertWeight(userID, dayOffset(-1), 90)
	require.NoError(t, err)

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.NotNil(t, s.LatestWeight)
	require.Equal(t, 90.0, *s.LatestWeight)
	require.Equal(t, dayOffset(-1), *s.LatestWeightDay)
	// Default target weight is 80.
	require.NotNil(t, s.DeltaToTarget)
	require.Equal(t, 10.0, *s.DeltaToTarget)
}

// Entries on {today, today-3, today-8} with distances {5,3,10}: the
// trailing window covers today-6..today, so only 5+3 count.
func TestSummarySevenDayRunWindow(t *testing.T) {
	records, summaries, userID := summaryFixture(t)

	_, err := records.UpsertRun(userID, dayOffset(0), 5, 30)
	require.NoError(t, err)
	_, err = records.UpsertRun(userID, dayOffset(-3), 3, 20)
	require.NoError(t, err)
	_, err = records.UpsertRun(userID, dayOffset(-8), 10, 55)
	require.NoError(t, err)

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.Equal(t, 8.0, s.Run7dKm)
}

func TestSummaryWindowBoundaryDay(t *testing.T) {
	records, summaries, userID := summaryFixture(t)

	_, err := records.UpsertRun(userID, dayOffset(-6), 2, 15)
	require.NoError(t, err)
	_, err = records.UpsertRun(userID, dayOffset(-7), 9, 50)
	require.NoError(t, err)

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.Equal(t, 2.0, s.Run7dKm)
}

func TestStreakCountsBackFromToday(t *testing.T) {
	records, summaries, userID := summaryFixture(t)

	// today and yesterday, gap at today-2, more history beyond it.
	for _, off := range []int{0, -1, -3, -4} {
		_, err := records.UpsertWeight(userID, dayOffset(off), 90)
		require.NoError(t, err)
	}

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.Equal(t, 2, s.WeighStreak)
}

func TestStreakZeroWhenTodayMissing(t *testing.T) {
	records, summaries, userID := summaryFixture(t)

	for _, off := range []int{-1, -2, -3} {
		_, err := records.UpsertRun(userID, dayOffset(off), 5, 30)
		require.NoError(t, err)
	}

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.Equal(t, 0, s.RunStreak)
}

func TestStreaksIndependentPerKind(t *testing.T) {
	records, summaries, userID := summaryFixture(t)

	_, err := records.UpsertWeight(userID, dayOffset(0), 90)
	require.NoError(t, err)
	for _, off := range []int{0, -1, -2} {
		_, err := records.UpsertRun(userID, dayOffset(off), 5, 30)
		require.NoError(t, err)
	}

	s, err := summaries.Build(userID)
	require.NoError(t, err)
	require.Equal(t, 1, s.WeighStreak)
	require.Equal(t, 3, s.RunStreak)
}
