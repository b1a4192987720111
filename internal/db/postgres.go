package db

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/Keoroanthony/go-orders/configs"
	"github.com/Keoroanthony/go-orders/internal/models"
)

var DB *gorm.DB

func Init(cfg *config.Settings) {

	var err error

	// TranslateError turns driver-specific uniqueness violations into
	// gorm.ErrDuplicatedKey, which the handlers rely on.
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})

	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}

	err = DB.AutoMigrate(
		&models.Customer{},
		&models.Order{},
	)

	if err != nil {
		slog.Error("failed to migrate DB", "error", err)
		os.Exit(1)
	}

	slog.Info("database connected and migrated successfully")
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}
