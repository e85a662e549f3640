package domain

import "time"

type TicketStatus string

const (
	TicketStatusUnpaid TicketStatus = "unpaid"
	TicketStatusPaid   TicketStatus = "paid"
)

// Ticket is issued when a booking is approved; start/end and vehicle are
// copied from the booking at approval time.
type Ticket struct {
	ID        int64        `json:"id"`
	BookingID int64        `json:"bookingId"`
	VehicleID int64        `json:"vehicleId"`
	StartTime time.Time    `json:"startTime"`
	EndTime   time.Time    `json:"endTime"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// UnpaidTicket pairs an unpaid ticket with the owner of its vehicle,
// for payment reminders.
type UnpaidTicket struct {
	Ticket Ticket
	Owner  User
}
