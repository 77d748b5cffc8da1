package config

import (
	"fmt"
	"os"

	"github.com/otterable/minifitna/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const devSecret = "change_this_to_a_long_random_secret"

type Config struct {
	Secret []byte // JWT signing key
	DBPath string
	Port   string
}

// Load reads configuration from the environment (and an optional .env
// file). Missing values fall back to development defaults; the insecure
// ones are flagged loudly rather than accepted in silence.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	secret := os.Getenv("APP_SECRET")
	if secret == "" {
		secret = devSecret
		log.Warn().Msg("APP_SECRET not set, using the insecure development secret; do not run this in production")
	}

	dbPath := os.Getenv("APP_DB")
	if dbPath == "" {
		dbPath = "minifitna.db"
		log.Warn().Str("path", dbPath).Msg("APP_DB not set, using default database path")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8743"
	}

	return Config{
		Secret: []byte(secret),
		DBPath: dbPath,
		Port:   port,
	}
}

// OpenDB opens the sqlite store and ensures the schema exists.
// Foreign keys are switched on so user deletion cascades to entries.
func OpenDB(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.WeightEntry{},
		&models.RunEntry{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
