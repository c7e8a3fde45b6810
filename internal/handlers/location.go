package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thereayou/geotrack/internal/database"
	"github.com/thereayou/geotrack/internal/handlers/dto"
	"github.com/thereayou/geotrack/internal/models"
)

const locationTimeLayout = "2006-01-02 03:04:05 PM"

const historyLimit = 10

type LocationHandler struct {
	db *database.Database
}

func NewLocationHandler(db *database.Database) *LocationHandler {
	return &LocationHandler{db: db}
}

// UpdateLocation сохраняет точку геолокации. user_id не аутентифицируется —
// клиент присылает его сам, это известное ограничение.
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.UserID == nil || req.Latitude == nil || req.Longitude == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id, latitude, or longitude"})
		return
	}

	ts := time.Now()
	if req.Timestamp != nil {
		ts = time.UnixMilli(*req.Timestamp)
	}

	loc := &models.Location{
		UserID:    *req.UserID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: ts,
	}

	if err := h.db.SaveLocation(loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Location updated successfully!"})
}

// GetLocation отдаёт последние десять точек пользователя, новые первыми
func (h *LocationHandler) GetLocation(c *gin.Context) {
	rawID := c.Query("user_id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user_id"})
		return
	}

	userID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return
	}

	locations, err := h.db.GetRecentLocations(uint(userID), historyLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	data := make([][]interface{}, len(locations))
	for i, loc := range locations {
		data[i] = []interface{}{loc.Latitude, loc.Longitude, loc.Timestamp.Format(locationTimeLayout)}
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
