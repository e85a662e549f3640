package ports

import (
	"context"

	"github.com/christejab07/Parking/internal/domain"
)

type VehicleRepo interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id, ownerID int64) error
}
