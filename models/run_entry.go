package models

import (
    "gorm.io/gorm"
)

// RunEntry is one recorded run, keyed like WeightEntry on (user, day).
type RunEntry struct {
    gorm.Model
    UserID      uint    `gorm:"uniqueIndex:idx_run_user_day;not null" json:"user_id"`
    Day         string  `gorm:"uniqueIndex:idx_run_user_day;not null" json:"day"`
    DistanceKm  float64 `gorm:"not null" json:"distance_km"`
    DurationMin float64 `gorm:"not null" json:"duration_min"`
}
