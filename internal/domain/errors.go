package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrVehicleNotFound = errors.New("vehicle not found or not owned by user")
	ErrBookingNotFound = errors.New("booking not found")
	ErrTicketNotFound  = errors.New("ticket not found or not owned by user")
)

var (
	ErrPlateTaken        = errors.New("plate number is already registered")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrVehicleInUse      = errors.New("vehicle has bookings and cannot be deleted")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
