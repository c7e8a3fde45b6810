package models

import (
	"time"
)

// Location одна точка геолокации пользователя
type Location struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Timestamp time.Time `gorm:"index;not null"`
}

func (Location) TableName() string {
	return "locations"
}
