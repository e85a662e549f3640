package ports

import (
	"context"

	"github.com/christejab07/Parking/internal/domain"
)

type TicketNotifier interface {
	NotifyTicketIssued(ctx context.Context, user *domain.User, ticket *domain.Ticket)
	NotifyPaymentReminder(ctx context.Context, user *domain.User, ticket *domain.Ticket)
}
