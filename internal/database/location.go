package database

import (
	"github.com/thereayou/geotrack/internal/models"
)

func (d *Database) SaveLocation(loc *models.Location) error {
	return d.db.Create(loc).Error
}

// GetRecentLocations возвращает последние limit точек пользователя, новые первыми
func (d *Database) GetRecentLocations(userID uint, limit int) ([]models.Location, error) {
	var locations []models.Location
	err := d.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
