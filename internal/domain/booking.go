package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
)

type Booking struct {
	ID        int64         `json:"id"`
	VehicleID int64         `json:"vehicleId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CreateBookingInput struct {
	VehicleID int64
	StartTime time.Time
	EndTime   time.Time
}
