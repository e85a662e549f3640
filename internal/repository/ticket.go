package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/christejab07/Parking/internal/domain"
)

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Ticket, error) {
	query := `SELECT t.id, t.booking_id, t.vehicle_id, t.start_time, t.end_time, t.status, t.created_at, t.updated_at
			  FROM tickets t
			  JOIN vehicles v ON v.id = t.vehicle_id
			  WHERE v.owner_id = $1
			  ORDER BY t.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		var t domain.Ticket
		if err = rows.Scan(&t.ID, &t.BookingID, &t.VehicleID, &t.StartTime, &t.EndTime, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, &t)
	}

	return res, rows.Err()
}

// Pay joins through the vehicle so a ticket of another owner is reported
// as not found. No status guard: re-paying a paid ticket is a no-op.
func (r *TicketRepository) Pay(ctx context.Context, ticketID, ownerID int64) (*domain.Ticket, error) {
	query := `UPDATE tickets t
			  SET status = $3, updated_at = now()
			  FROM vehicles v
			  WHERE t.id = $1 AND v.id = t.vehicle_id AND v.owner_id = $2
			  RETURNING t.id, t.booking_id, t.vehicle_id, t.start_time, t.end_time, t.status, t.created_at, t.updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, ticketID, ownerID, domain.TicketStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("pay ticket: %w", err)
	}

	var t domain.Ticket
	if err = row.Scan(&t.ID, &t.BookingID, &t.VehicleID, &t.StartTime, &t.EndTime, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return &t, nil
}

func (r *TicketRepository) ListUnpaid(ctx context.Context) ([]*domain.UnpaidTicket, error) {
	query := `SELECT t.id, t.booking_id, t.vehicle_id, t.start_time, t.end_time, t.status, t.created_at, t.updated_at,
					 u.id, u.username, u.telegram_chat_id
			  FROM tickets t
			  JOIN vehicles v ON v.id = t.vehicle_id
			  JOIN users u ON u.id = v.owner_id
			  WHERE t.status = $1
			  ORDER BY t.created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.TicketStatusUnpaid)
	if err != nil {
		return nil, fmt.Errorf("list unpaid tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.UnpaidTicket
	for rows.Next() {
		var ut domain.UnpaidTicket
		if err = rows.Scan(
			&ut.Ticket.ID, &ut.Ticket.BookingID, &ut.Ticket.VehicleID,
			&ut.Ticket.StartTime, &ut.Ticket.EndTime, &ut.Ticket.Status,
			&ut.Ticket.CreatedAt, &ut.Ticket.UpdatedAt,
			&ut.Owner.ID, &ut.Owner.Username, &ut.Owner.TelegramChatID,
		); err != nil {
			return nil, fmt.Errorf("scan unpaid ticket: %w", err)
		}
		res = append(res, &ut)
	}

	return res, rows.Err()
}
