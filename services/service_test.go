package services_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/otterable/minifitna/config"
	"github.com/otterable/minifitna/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		PasswordHash: "irrelevant",
		TargetWeight: models.DefaultTargetWeight,
		DailyRunKm:   models.DefaultDailyRunKm,
		WeighTime:    models.DefaultWeighTime,
		RunTime:      models.DefaultRunTime,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// fixedClock pins "today" for date-sensitive tests.
func fixedClock(day string) func() time.Time {
	return func() time.Time {
		ts, _ := time.Parse("2006-01-02", day)
		return ts
	}
}
