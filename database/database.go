package database

import (
	"Bagged/internal/config"
	"Bagged/internal/models"
	"Bagged/internal/services"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var envVariables = [...]string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_TZ"}

// SetupDatabase opens the configured database and migrates the schema. The returned
// cleanup closes the connection pool.
func SetupDatabase(configuration *config.Configuration, logService services.LogService) (*gorm.DB, func(), error) {
	dialector, err := dialectorFor(configuration, logService)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(db); err != nil {
		CloseDatabase(db, logService)
		return nil, nil, err
	}
	return db, func() { CloseDatabase(db, logService) }, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Bag{}, &models.Cuboid{})
}

func dialectorFor(configuration *config.Configuration, logService services.LogService) (gorm.Dialector, error) {
	switch configuration.Database.Driver {
	case "sqlite":
		return sqlite.Open(configuration.Database.Path), nil
	case "postgres":
		dsn, err := postgresDSN(logService)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", configuration.Database.Driver)
	}
}

func postgresDSN(logService services.LogService) (string, error) {
	if err := godotenv.Load(); err != nil {
		logService.Log.Debug("no .env file found, using environment variables")
	}
	for _, envVariable := range envVariables {
		if os.Getenv(envVariable) != "" {
			continue
		}
		switch envVariable {
		case "DB_SSLMODE":
			if err := os.Setenv("DB_SSLMODE", "disable"); err != nil {
				return "", err
			}
		case "DB_TZ":
			if err := os.Setenv("DB_TZ", "UTC"); err != nil {
				return "", err
			}
		default:
			return "", fmt.Errorf("%s environment variable not set", envVariable)
		}
	}
	return os.ExpandEnv("host=${DB_HOST} user=${DB_USER} password=${DB_PASSWORD} dbname=${DB_NAME} port=${DB_PORT} sslmode=${DB_SSLMODE} TimeZone=${DB_TZ}"), nil
}

func CloseDatabase(db *gorm.DB, logService services.LogService) {
	sqlDB, err := db.DB()
	if err != nil {
		logService.Log.Errorf("Could not get DB instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logService.Log.Errorf("Error closing database: %v", err)
	}
}
