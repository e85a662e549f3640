package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports/mocks"
)

func int64ptr(v int64) *int64 { return &v }

func TestTicketService_Pay_Success(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(repo, notifier, newTestLogger(t))

	paid := &domain.Ticket{ID: 1, BookingID: 1, VehicleID: 1, Status: domain.TicketStatusPaid}
	repo.EXPECT().Pay(mock.Anything, int64(1), int64(7)).Return(paid, nil)

	ticket, err := svc.Pay(context.Background(), 7, 1)

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusPaid, ticket.Status)
}

func TestTicketService_Pay_NotOwned(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(repo, notifier, newTestLogger(t))

	repo.EXPECT().Pay(mock.Anything, int64(1), int64(8)).Return(nil, domain.ErrTicketNotFound)

	_, err := svc.Pay(context.Background(), 8, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestTicketService_List(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(repo, notifier, newTestLogger(t))

	tickets := []*domain.Ticket{
		{ID: 1, Status: domain.TicketStatusUnpaid},
		{ID: 2, Status: domain.TicketStatusPaid},
	}
	repo.EXPECT().ListByOwner(mock.Anything, int64(7)).Return(tickets, nil)

	result, err := svc.List(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestTicketService_RemindUnpaid_SkipsOwnersWithoutChatID(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(repo, notifier, newTestLogger(t))

	unpaid := []*domain.UnpaidTicket{
		{
			Ticket: domain.Ticket{ID: 1, Status: domain.TicketStatusUnpaid},
			Owner:  domain.User{ID: 7, Username: "alice", TelegramChatID: int64ptr(100)},
		},
		{
			Ticket: domain.Ticket{ID: 2, Status: domain.TicketStatusUnpaid},
			Owner:  domain.User{ID: 8, Username: "bob"},
		},
	}
	repo.EXPECT().ListUnpaid(mock.Anything).Return(unpaid, nil)
	notifier.EXPECT().NotifyPaymentReminder(mock.Anything, &unpaid[0].Owner, &unpaid[0].Ticket).Return()

	sent, err := svc.RemindUnpaid(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestTicketService_RemindUnpaid_RepoError(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	notifier := mocks.NewMockTicketNotifier(t)
	svc := NewTicketService(repo, notifier, newTestLogger(t))

	repo.EXPECT().ListUnpaid(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RemindUnpaid(context.Background())

	require.Error(t, err)
}
