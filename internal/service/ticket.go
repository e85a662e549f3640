package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports"
)

type TicketService struct {
	repo     ports.TicketRepo
	notifier ports.TicketNotifier
	logger   logger.Logger
}

func NewTicketService(repo ports.TicketRepo, notifier ports.TicketNotifier, logger logger.Logger) *TicketService {
	return &TicketService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *TicketService) List(ctx context.Context, ownerID int64) ([]*domain.Ticket, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *TicketService) Pay(ctx context.Context, callerID, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.repo.Pay(ctx, ticketID, callerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ticket paid",
		logger.Int64("ticket_id", ticket.ID),
		logger.Int64("owner_id", callerID),
	)

	return ticket, nil
}

// RemindUnpaid notifies owners of unpaid tickets and returns how many
// reminders were sent.
func (s *TicketService) RemindUnpaid(ctx context.Context) (int, error) {
	unpaid, err := s.repo.ListUnpaid(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unpaid: %w", err)
	}

	sent := 0
	for _, ut := range unpaid {
		if ut.Owner.TelegramChatID == nil {
			continue
		}
		s.notifier.NotifyPaymentReminder(ctx, &ut.Owner, &ut.Ticket)
		sent++
	}

	return sent, nil
}
