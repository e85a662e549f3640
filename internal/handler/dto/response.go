package dto

import (
	"time"

	"github.com/christejab07/Parking/internal/domain"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type VehicleResponse struct {
	ID          int64  `json:"id"`
	PlateNumber string `json:"plateNumber"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Color       string `json:"color"`
	OwnerID     int64  `json:"ownerId"`
	CreatedAt   string `json:"created_at"`
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	VehicleID int64  `json:"vehicleId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type TicketResponse struct {
	ID        int64  `json:"id"`
	BookingID int64  `json:"bookingId"`
	VehicleID int64  `json:"vehicleId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID,
		PlateNumber: v.PlateNumber,
		Brand:       v.Brand,
		Model:       v.Model,
		Color:       v.Color,
		OwnerID:     v.OwnerID,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		VehicleID: b.VehicleID,
		StartTime: b.StartTime.Format(time.RFC3339),
		EndTime:   b.EndTime.Format(time.RFC3339),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:        t.ID,
		BookingID: t.BookingID,
		VehicleID: t.VehicleID,
		StartTime: t.StartTime.Format(time.RFC3339),
		EndTime:   t.EndTime.Format(time.RFC3339),
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}
