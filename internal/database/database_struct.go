package database

import "gorm.io/gorm"

// Database обёртка над общим пулом gorm
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}
