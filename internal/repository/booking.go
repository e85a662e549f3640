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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (vehicle_id, start_time, end_time, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $5)
			  RETURNING id`
	now := time.Now().UTC()

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		b.VehicleID, b.StartTime, b.EndTime, b.Status, now,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = row.Scan(&b.ID); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

// Approve transitions pending -> approved and inserts the ticket in one
// transaction. The UPDATE is keyed on the prior status, so concurrent
// approvals of the same booking produce exactly one ticket.
func (r *BookingRepository) Approve(ctx context.Context, bookingID int64) (*domain.Booking, *domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING id, vehicle_id, start_time, end_time, status, created_at, updated_at`

	var b domain.Booking
	err = tx.QueryRowContext(
		ctx, query, bookingID,
		domain.BookingStatusApproved, domain.BookingStatusPending,
	).Scan(&b.ID, &b.VehicleID, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Not pending, or gone entirely.
			var status string
			checkQuery := `SELECT status FROM bookings WHERE id = $1`
			if scanErr := tx.QueryRowContext(ctx, checkQuery, bookingID).Scan(&status); scanErr != nil {
				return nil, nil, domain.ErrBookingNotFound
			}
			return nil, nil, domain.ErrBookingNotPending
		}
		return nil, nil, fmt.Errorf("approve booking: %w", err)
	}

	ticketQuery := `INSERT INTO tickets (booking_id, vehicle_id, start_time, end_time, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, now(), now())
					RETURNING id, created_at, updated_at`

	t := domain.Ticket{
		BookingID: b.ID,
		VehicleID: b.VehicleID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    domain.TicketStatusUnpaid,
	}
	err = tx.QueryRowContext(
		ctx, ticketQuery,
		t.BookingID, t.VehicleID, t.StartTime, t.EndTime, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("insert ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit approve: %w", err)
	}

	return &b, &t, nil
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.vehicle_id, b.start_time, b.end_time, b.status, b.created_at, b.updated_at
			  FROM bookings b
			  JOIN vehicles v ON v.id = b.vehicle_id
			  WHERE v.owner_id = $1
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.VehicleID, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
