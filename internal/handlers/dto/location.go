package dto

// UpdateLocationRequest поля-указатели, чтобы нулевые координаты
// (экватор, нулевой меридиан) не считались отсутствующими
type UpdateLocationRequest struct {
	UserID    *uint    `json:"user_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Timestamp *int64   `json:"timestamp"` // epoch millis, опционально
}
