package services

import (
	"time"

	"github.com/otterable/minifitna/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DayFormat is how calendar days are stored: ISO date, server-local.
// ISO strings sort and compare the same way dates do, so ordering and
// range filters stay plain string operations.
const DayFormat = "2006-01-02"

type RecordService struct {
	db *gorm.DB

	// Now is the clock used when a day is omitted; swapped in tests.
	Now func() time.Time
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db, Now: time.Now}
}

// UpsertWeight writes the weigh-in for (user, day); a second write for
// the same day replaces the value. Empty day means today.
func (s *RecordService) UpsertWeight(userID uint, day string, weightKg float64) (models.WeightEntry, error) {
	if day == "" {
		day = s.Now().Format(DayFormat)
	}
	entry := models.WeightEntry{UserID: userID, Day: day, WeightKg: weightKg}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight_kg", "updated_at"}),
	}).Create(&entry).Error
	return entry, err
}

// UpsertRun writes the run for (user, day) with the same semantics as
// UpsertWeight.
func (s *RecordService) UpsertRun(userID uint, day string, distanceKm, durationMin float64) (models.RunEntry, error) {
	if day == "" {
		day = s.Now().Format(DayFormat)
	}
	entry := models.RunEntry{UserID: userID, Day: day, DistanceKm: distanceKm, DurationMin: durationMin}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"distance_km", "duration_min", "updated_at"}),
	}).Create(&entry).Error
	return entry, err
}

// ListWeights returns a user's weigh-ins newest day first, optionally
// limited to an inclusive [start, end] range.
func (s *RecordService) ListWeights(userID uint, start, end string) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.rangeQuery(userID, start, end).Find(&entries).Error
	return entries, err
}

// ListRuns is ListWeights for runs.
func (s *RecordService) ListRuns(userID uint, start, end string) ([]models.RunEntry, error) {
	var entries []models.RunEntry
	err := s.rangeQuery(userID, start, end).Find(&entries).Error
	return entries, err
}

func (s *RecordService) rangeQuery(userID uint, start, end string) *gorm.DB {
	q := s.db.Where("user_id = ?", userID)
	if start != "" {
		q = q.Where("day >= ?", start)
	}
	if end != "" {
		q = q.Where("day <= ?", end)
	}
	return q.Order("day DESC")
}
