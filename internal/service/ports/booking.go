package ports

import (
	"context"

	"github.com/christejab07/Parking/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	// Approve flips a pending booking to approved and issues its ticket in
	// a single transaction. Returns the updated booking and the new ticket.
	Approve(ctx context.Context, bookingID int64) (*domain.Booking, *domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error)
}
