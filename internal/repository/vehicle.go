package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/christejab07/Parking/internal/domain"
)

type VehicleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVehicleRepo(db *dbpg.DB) *VehicleRepository {
	return &VehicleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (plate_number, brand, model, color, owner_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)
			  RETURNING id`
	now := time.Now().UTC()

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		v.PlateNumber, v.Brand, v.Model, v.Color, v.OwnerID, now,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}

	if err = row.Scan(&v.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPlateTaken
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}

	v.CreatedAt = now
	v.UpdatedAt = now
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	query := `SELECT id, plate_number, brand, model, color, owner_id, created_at, updated_at
			  FROM vehicles
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}

	return scanVehicle(row)
}

// GetByIDAndOwner reports a vehicle owned by someone else as not found,
// so callers cannot probe other users' vehicles.
func (r *VehicleRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Vehicle, error) {
	query := `SELECT id, plate_number, brand, model, color, owner_id, created_at, updated_at
			  FROM vehicles
			  WHERE id = $1 AND owner_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get vehicle by owner: %w", err)
	}

	return scanVehicle(row)
}

func (r *VehicleRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Vehicle, error) {
	query := `SELECT id, plate_number, brand, model, color, owner_id, created_at, updated_at
			  FROM vehicles
			  WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err = rows.Scan(&v.ID, &v.PlateNumber, &v.Brand, &v.Model, &v.Color, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		res = append(res, &v)
	}

	return res, rows.Err()
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles
			  SET plate_number = $3, brand = $4, model = $5, color = $6, updated_at = now()
			  WHERE id = $1 AND owner_id = $2
			  RETURNING updated_at`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		v.ID, v.OwnerID, v.PlateNumber, v.Brand, v.Model, v.Color,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}

	if err = row.Scan(&v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVehicleNotFound
		}
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrPlateTaken
		}
		return fmt.Errorf("update vehicle: %w", err)
	}

	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id, ownerID int64) error {
	query := `DELETE FROM vehicles WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, ownerID)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrVehicleInUse
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vehicle rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

func scanVehicle(row *sql.Row) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(&v.ID, &v.PlateNumber, &v.Brand, &v.Model, &v.Color, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("scan vehicle: %w", err)
	}
	return &v, nil
}
