package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockVehicleRepo, *mocks.MockUserRepo, *mocks.MockTicketNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	vehicleRepo := mocks.NewMockVehicleRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)

	svc := NewBookingService(bookingRepo, vehicleRepo, userRepo, notifier, newTestLogger(t))
	return svc, bookingRepo, vehicleRepo, userRepo, notifier
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, bookingRepo, vehicleRepo, _, _ := newBookingService(t)

	vehicle := &domain.Vehicle{ID: 1, PlateNumber: "ABC-123", OwnerID: 7}
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	vehicleRepo.EXPECT().GetByIDAndOwner(mock.Anything, int64(1), int64(7)).Return(vehicle, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	booking, err := svc.Create(context.Background(), 7, domain.CreateBookingInput{
		VehicleID: 1,
		StartTime: start,
		EndTime:   end,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, int64(1), booking.VehicleID)
	assert.Equal(t, start, booking.StartTime)
	assert.Equal(t, end, booking.EndTime)
}

func TestBookingService_Create_EndBeforeStart(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), 7, domain.CreateBookingInput{
		VehicleID: 1,
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "End time must be after start time")
}

func TestBookingService_Create_EndEqualsStart(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), 7, domain.CreateBookingInput{
		VehicleID: 1,
		StartTime: at,
		EndTime:   at,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_InvalidVehicleID(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	_, err := svc.Create(context.Background(), 7, domain.CreateBookingInput{
		VehicleID: 0,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_VehicleNotOwned(t *testing.T) {
	svc, _, vehicleRepo, _, _ := newBookingService(t)

	// Vehicle 3 belongs to someone else: same error as a missing vehicle.
	vehicleRepo.EXPECT().GetByIDAndOwner(mock.Anything, int64(3), int64(7)).Return(nil, domain.ErrVehicleNotFound)

	_, err := svc.Create(context.Background(), 7, domain.CreateBookingInput{
		VehicleID: 3,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestBookingService_Create_OverlapAllowed(t *testing.T) {
	// Overlapping bookings for the same vehicle are accepted; there is no
	// double-booking check.
	svc, bookingRepo, vehicleRepo, _, _ := newBookingService(t)

	vehicle := &domain.Vehicle{ID: 1, OwnerID: 7}
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	vehicleRepo.EXPECT().GetByIDAndOwner(mock.Anything, int64(1), int64(7)).Return(vehicle, nil).Times(2)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(2)

	input := domain.CreateBookingInput{VehicleID: 1, StartTime: start, EndTime: end}

	_, err := svc.Create(context.Background(), 7, input)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 7, input)
	require.NoError(t, err)
}

func TestBookingService_Approve_Success(t *testing.T) {
	svc, bookingRepo, vehicleRepo, userRepo, notifier := newBookingService(t)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	approved := &domain.Booking{ID: 1, VehicleID: 1, StartTime: start, EndTime: end, Status: domain.BookingStatusApproved}
	ticket := &domain.Ticket{ID: 1, BookingID: 1, VehicleID: 1, StartTime: start, EndTime: end, Status: domain.TicketStatusUnpaid}
	vehicle := &domain.Vehicle{ID: 1, OwnerID: 7}
	owner := &domain.User{ID: 7, Username: "alice"}

	bookingRepo.EXPECT().Approve(mock.Anything, int64(1)).Return(approved, ticket, nil)
	vehicleRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(vehicle, nil)
	userRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(owner, nil)
	notifier.EXPECT().NotifyTicketIssued(mock.Anything, owner, ticket).Return()

	booking, err := svc.Approve(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Approve_NotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().Approve(mock.Anything, int64(42)).Return(nil, nil, domain.ErrBookingNotFound)

	_, err := svc.Approve(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Approve_AlreadyApproved(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().Approve(mock.Anything, int64(1)).Return(nil, nil, domain.ErrBookingNotPending)

	_, err := svc.Approve(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_ListByOwner(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: 1, VehicleID: 1, Status: domain.BookingStatusPending},
		{ID: 2, VehicleID: 1, Status: domain.BookingStatusApproved},
	}
	bookingRepo.EXPECT().ListByOwner(mock.Anything, int64(7)).Return(bookings, nil)

	result, err := svc.ListByOwner(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
