package ports

import (
	"context"

	"github.com/christejab07/Parking/internal/domain"
)

type TicketRepo interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Ticket, error)
	// Pay marks the ticket paid if its vehicle belongs to ownerID.
	// Paying an already-paid ticket is a no-op that returns the ticket.
	Pay(ctx context.Context, ticketID, ownerID int64) (*domain.Ticket, error)
	ListUnpaid(ctx context.Context) ([]*domain.UnpaidTicket, error)
}
