package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/christejab07/Parking/internal/domain"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTicketIssued(ctx context.Context, user *domain.User, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Booking approved, ticket issued*\n\n"+
			"Ticket #%d\n"+
			"From (UTC): %s\n"+
			"To (UTC): %s\n"+
			"Please pay the ticket before your parking session starts.",
		ticket.ID,
		ticket.StartTime.Format(timeLayout),
		ticket.EndTime.Format(timeLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPaymentReminder(ctx context.Context, user *domain.User, ticket *domain.Ticket) {
	text := fmt.Sprintf(
		"*Unpaid parking ticket*\n\n"+
			"Ticket #%d is still unpaid.\n"+
			"From (UTC): %s\n"+
			"To (UTC): %s",
		ticket.ID,
		ticket.StartTime.Format(timeLayout),
		ticket.EndTime.Format(timeLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
