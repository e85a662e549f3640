package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type ticketReminder interface {
	RemindUnpaid(ctx context.Context) (int, error)
}

// Scheduler periodically reminds owners about unpaid tickets. It performs
// no state transitions.
type Scheduler struct {
	ticketService ticketReminder
	interval      time.Duration
	logger        logger.Logger
}

func New(
	ticketService ticketReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		ticketService: ticketService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.ticketService.RemindUnpaid(ctx)
	if err != nil {
		s.logger.Error("failed to send payment reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("payment reminders sent",
			logger.Int("count", sent),
		)
	}
}
