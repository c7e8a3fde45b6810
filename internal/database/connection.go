package database

import (
	"os"
	"time"

	"github.com/thereayou/geotrack/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect открывает пул соединений и создаёт таблицы.
// По умолчанию локальный sqlite-файл, DATABASE_URL переключает на Postgres.
func (d *Database) Connect() error {
	var dialector gorm.Dialector
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "users.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Location{}); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	d.db = db

	return nil
}
