package services

import (
	"errors"
	"time"

	"github.com/otterable/minifitna/models"

	"gorm.io/gorm"
)

// Summary is the derived daily-status snapshot. Weight fields are
// pointers because a user without weigh-ins has no latest weight and no
// delta; the 7-day run total is always a number, zero when empty.
type Summary struct {
	LatestWeight    *float64 `json:"latest_weight"`
	LatestWeightDay *string  `json:"latest_weight_day"`
	DeltaToTarget   *float64 `json:"delta_to_target"`
	DailyRunGoalKm  float64  `json:"daily_run_goal_km"`
	Run7dKm         float64  `json:"run_7d_km"`
	WeighStreak     int      `json:"weigh_streak"`
	RunStreak       int      `json:"run_streak"`
}

type SummaryService struct {
	db *gorm.DB

	Now func() time.Time
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db, Now: time.Now}
}

// Build reads the stores and computes the snapshot. Read-only.
func (s *SummaryService) Build(userID uint) (Summary, error) {
	var out Summary

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return out, err
	}
	out.DailyRunGoalKm = user.DailyRunKm

	var latest models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("day DESC").First(&latest).Error
	switch {
	case err == nil:
		out.LatestWeight = &latest.WeightKg
		out.LatestWeightDay = &latest.Day
		delta := latest.WeightKg - user.TargetWeight
		out.DeltaToTarget = &delta
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no weigh-ins yet, weight fields stay null
	default:
		return out, err
	}

	today := s.Now()

	// Trailing 7-day window including today.
	start7 := today.AddDate(0, 0, -6).Format(DayFormat)
	err = s.db.Model(&models.RunEntry{}).
		Where("user_id = ? AND day >= ?", userID, start7).
		Select("COALESCE(SUM(distance_km), 0)").
		Scan(&out.Run7dKm).Error
	if err != nil {
		return out, err
	}

	if out.WeighStreak, err = s.streak(&models.WeightEntry{}, userID, today); err != nil {
		return out, err
	}
	if out.RunStreak, err = s.streak(&models.RunEntry{}, userID, today); err != nil {
		return out, err
	}

	return out, nil
}

// streak walks backward from today one day at a time and stops at the
// first day without an entry. A missing entry today means 0 no matter
// what came before; this is stop-at-first-gap, not longest-in-history.
func (s *SummaryService) streak(model interface{}, userID uint, today time.Time) (int, error) {
	count := 0
	day := today
	for {
		var n int64
		err := s.db.Model(model).
			Where("user_id = ? AND day = ?", userID, day.Format(DayFormat)).
			Count(&n).Error
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return count, nil
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
}
