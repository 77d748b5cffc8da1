package services

import (
	"errors"
	"strings"

	"github.com/otterable/minifitna/models"
	"github.com/otterable/minifitna/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{db: db, secret: secret}
}

// Register creates a user with default goals and returns a signed token.
// Usernames are stored trimmed and lowercased.
func (s *AuthService) Register(username, password string) (string, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return "", "", ErrMissingFields
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return "", "", ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", "", err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		TargetWeight: models.DefaultTargetWeight,
		DailyRunKm:   models.DefaultDailyRunKm,
		WeighTime:    models.DefaultWeighTime,
		RunTime:      models.DefaultRunTime,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Unique index backstops the existence check above.
		if strings.Contains(err.Error(), "UNIQUE") {
			return "", "", ErrUsernameTaken
		}
		return "", "", err
	}

	token, err := utils.GenerateJWT(user.ID, username, s.secret)
	if err != nil {
		return "", "", err
	}
	return token, username, nil
}

// Login verifies credentials and returns a signed token. Unknown user
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return "", "", ErrMissingFields
	}

	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, username, s.secret)
	if err != nil {
		return "", "", err
	}
	return token, username, nil
}
