package dto

type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateVehicleRequest struct {
	PlateNumber string `json:"plateNumber" binding:"required"`
	Brand       string `json:"brand" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Color       string `json:"color" binding:"required"`
}

// UpdateVehicleRequest is a partial update; absent fields are left as is.
type UpdateVehicleRequest struct {
	PlateNumber *string `json:"plateNumber"`
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	Color       *string `json:"color"`
}

type CreateBookingRequest struct {
	VehicleID int64  `json:"vehicleId" binding:"required,gt=0"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
