package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports"
)

type VehicleService struct {
	repo   ports.VehicleRepo
	logger logger.Logger
}

func NewVehicleService(repo ports.VehicleRepo, logger logger.Logger) *VehicleService {
	return &VehicleService{
		repo:   repo,
		logger: logger,
	}
}

func (s *VehicleService) Create(ctx context.Context, ownerID int64, input domain.CreateVehicleInput) (*domain.Vehicle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vehicle := &domain.Vehicle{
		PlateNumber: input.PlateNumber,
		Brand:       input.Brand,
		Model:       input.Model,
		Color:       input.Color,
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.logger.Info("vehicle registered",
		logger.Int64("vehicle_id", vehicle.ID),
		logger.Int64("owner_id", ownerID),
		logger.String("plate", vehicle.PlateNumber),
	)

	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, ownerID int64) ([]*domain.Vehicle, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update applies a partial update; only the fields present in input are
// validated and changed.
func (s *VehicleService) Update(ctx context.Context, ownerID, id int64, input domain.UpdateVehicleInput) (*domain.Vehicle, error) {
	if input.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	vehicle, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	input.Apply(vehicle)

	if err = s.repo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *VehicleService) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("vehicle deleted",
		logger.Int64("vehicle_id", id),
		logger.Int64("owner_id", ownerID),
	)

	return nil
}
