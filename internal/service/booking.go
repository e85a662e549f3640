package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	vehicleRepo ports.VehicleRepo
	userRepo    ports.UserRepo
	notifier    ports.TicketNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	vehicleRepo ports.VehicleRepo,
	userRepo ports.UserRepo,
	notifier ports.TicketNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Create books a parking slot for one of the caller's vehicles. Overlapping
// bookings for the same vehicle are allowed.
func (s *BookingService) Create(ctx context.Context, callerID int64, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicle id must be a positive integer", domain.ErrValidation)
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: End time must be after start time", domain.ErrValidation)
	}

	vehicle, err := s.vehicleRepo.GetByIDAndOwner(ctx, input.VehicleID, callerID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		VehicleID: vehicle.ID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    domain.BookingStatusPending,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("vehicle_id", vehicle.ID),
		logger.Int64("owner_id", callerID),
	)

	return booking, nil
}

// Approve flips the booking to approved and issues the ticket. The role
// check happens at the router; any admin may approve any booking.
func (s *BookingService) Approve(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, ticket, err := s.bookingRepo.Approve(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking approved",
		logger.Int64("booking_id", booking.ID),
		logger.Int64("ticket_id", ticket.ID),
	)

	go s.notifyIssued(context.WithoutCancel(ctx), booking.VehicleID, ticket)

	return booking, nil
}

func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID)
}

func (s *BookingService) notifyIssued(ctx context.Context, vehicleID int64, ticket *domain.Ticket) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		s.logger.Error("failed to get vehicle for notification",
			logger.Int64("vehicle_id", vehicleID),
			logger.String("error", err.Error()),
		)
		return
	}

	owner, err := s.userRepo.GetByID(ctx, vehicle.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.Int64("owner_id", vehicle.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyTicketIssued(ctx, owner, ticket)
}
