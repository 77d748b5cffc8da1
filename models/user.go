package models

import (
    "gorm.io/gorm"
)

// Profile defaults. A profile update that omits a field resets it to
// these values, it does not keep the stored value.
const (
    DefaultTargetWeight = 80.0
    DefaultDailyRunKm   = 10.0
    DefaultWeighTime    = "08:00"
    DefaultRunTime      = "18:00"
)

type User struct {
    gorm.Model
    Username     string  `gorm:"uniqueIndex;not null" json:"username"`
    PasswordHash string  `gorm:"not null" json:"-"`
    TargetWeight float64 `gorm:"default:80.0" json:"target_weight"`
    DailyRunKm   float64 `gorm:"default:10.0" json:"daily_run_km"`
    WeighTime    string  `gorm:"default:'08:00'" json:"weigh_time"`
    RunTime      string  `gorm:"default:'18:00'" json:"run_time"`

    Weights []WeightEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`
    Runs    []RunEntry    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
