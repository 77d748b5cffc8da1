package services

import (
	"github.com/otterable/minifitna/models"

	"gorm.io/gorm"
)

type Profile struct {
	ID           uint    `json:"id"`
	Username     string  `json:"username"`
	TargetWeight float64 `json:"target_weight"`
	DailyRunKm   float64 `json:"daily_run_km"`
	WeighTime    string  `json:"weigh_time"`
	RunTime      string  `json:"run_time"`
}

// ProfileInput carries a full profile replacement. Pointer fields so an
// omitted field can be told apart from a zero one: omitted fields are
// reset to the defaults, not kept (replace, not merge).
type ProfileInput struct {
	TargetWeight *float64 `json:"target_weight"`
	DailyRunKm   *float64 `json:"daily_run_km"`
	WeighTime    *string  `json:"weigh_time"`
	RunTime      *string  `json:"run_time"`
}

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) Get(userID uint) (Profile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return Profile{}, err
	}
	return profileOf(user), nil
}

// Update replaces all four goal fields and returns the stored profile.
func (s *ProfileService) Update(userID uint, input ProfileInput) (Profile, error) {
	targetWeight := models.DefaultTargetWeight
	if input.TargetWeight != nil {
		targetWeight = *input.TargetWeight
	}
	dailyRunKm := models.DefaultDailyRunKm
	if input.DailyRunKm != nil {
		dailyRunKm = *input.DailyRunKm
	}
	weighTime := models.DefaultWeighTime
	if input.WeighTime != nil {
		weighTime = *input.WeighTime
	}
	runTime := models.DefaultRunTime
	if input.RunTime != nil {
		runTime = *input.RunTime
	}

	// Map form so values equal to Go zero values still get written.
	err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"target_weight": targetWeight,
		"daily_run_km":  dailyRunKm,
		"weigh_time":    weighTime,
		"run_time":      runTime,
	}).Error
	if err != nil {
		return Profile{}, err
	}

	return s.Get(userID)
}

func profileOf(user models.User) Profile {
	return Profile{
		ID:           user.ID,
		Username:     user.Username,
		TargetWeight: user.TargetWeight,
		DailyRunKm:   user.DailyRunKm,
		WeighTime:    user.WeighTime,
		RunTime:      user.RunTime,
	}
}
