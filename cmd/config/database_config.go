package config

import (
	"Recipe-Book/internal/utils"
	"fmt"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver := utils.GetConfig("DB_DRIVER"); driver {
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(utils.GetConfig("DB_PATH") + "?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
