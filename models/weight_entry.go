package models

import (
    "gorm.io/gorm"
)

// WeightEntry is one weigh-in. Day is an ISO YYYY-MM-DD date string;
// at most one entry exists per (user, day).
type WeightEntry struct {
    gorm.Model
    UserID   uint    `gorm:"uniqueIndex:idx_weight_user_day;not null" json:"user_id"`
    Day      string  `gorm:"uniqueIndex:idx_weight_user_day;not null" json:"day"`
    WeightKg float64 `gorm:"not null" json:"weight_kg"`
}
