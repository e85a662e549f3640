package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/christejab07/Parking/internal/domain"
	"github.com/christejab07/Parking/internal/service/ports/mocks"
)

func strptr(s string) *string { return &s }

func TestVehicleService_Create_Success(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	vehicle, err := svc.Create(context.Background(), 7, domain.CreateVehicleInput{
		PlateNumber: "ABC-123",
		Brand:       "Toyota",
		Model:       "Corolla",
		Color:       "Red",
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC-123", vehicle.PlateNumber)
	assert.Equal(t, int64(7), vehicle.OwnerID)
}

func TestVehicleService_Create_InvalidFields(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	cases := []struct {
		name  string
		input domain.CreateVehicleInput
	}{
		{"plate too short", domain.CreateVehicleInput{PlateNumber: "AB", Brand: "Toyota", Model: "Corolla", Color: "Red"}},
		{"plate too long", domain.CreateVehicleInput{PlateNumber: "ABCDEFGHIJK", Brand: "Toyota", Model: "Corolla", Color: "Red"}},
		{"plate bad chars", domain.CreateVehicleInput{PlateNumber: "AB?123", Brand: "Toyota", Model: "Corolla", Color: "Red"}},
		{"brand with digits", domain.CreateVehicleInput{PlateNumber: "ABC-123", Brand: "Toyota1", Model: "Corolla", Color: "Red"}},
		{"brand too short", domain.CreateVehicleInput{PlateNumber: "ABC-123", Brand: "T", Model: "Corolla", Color: "Red"}},
		{"model bad chars", domain.CreateVehicleInput{PlateNumber: "ABC-123", Brand: "Toyota", Model: "Corolla!", Color: "Red"}},
		{"color with digits", domain.CreateVehicleInput{PlateNumber: "ABC-123", Brand: "Toyota", Model: "Corolla", Color: "Red5"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 7, tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVehicleService_Create_PlateTaken(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	// Uniqueness is global: any user holding the plate causes a conflict.
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPlateTaken)

	_, err := svc.Create(context.Background(), 7, domain.CreateVehicleInput{
		PlateNumber: "ABC-123",
		Brand:       "Toyota",
		Model:       "Corolla",
		Color:       "Red",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPlateTaken)
}

func TestVehicleService_Update_PartialFields(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	existing := &domain.Vehicle{ID: 1, PlateNumber: "ABC-123", Brand: "Toyota", Model: "Corolla", Color: "Red", OwnerID: 7}

	repo.EXPECT().GetByIDAndOwner(mock.Anything, int64(1), int64(7)).Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	vehicle, err := svc.Update(context.Background(), 7, 1, domain.UpdateVehicleInput{
		Color: strptr("Blue"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Blue", vehicle.Color)
	assert.Equal(t, "ABC-123", vehicle.PlateNumber)
	assert.Equal(t, "Toyota", vehicle.Brand)
}

func TestVehicleService_Update_ValidatesOnlyPresentFields(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	// A bad color fails even though all other fields are absent.
	_, err := svc.Update(context.Background(), 7, 1, domain.UpdateVehicleInput{
		Color: strptr("Blue42"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVehicleService_Update_Empty(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	_, err := svc.Update(context.Background(), 7, 1, domain.UpdateVehicleInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVehicleService_Update_NotOwned(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	repo.EXPECT().GetByIDAndOwner(mock.Anything, int64(1), int64(8)).Return(nil, domain.ErrVehicleNotFound)

	_, err := svc.Update(context.Background(), 8, 1, domain.UpdateVehicleInput{
		Color: strptr("Blue"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleNotFound)
}

func TestVehicleService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, int64(1), int64(7)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 7, 1))
}

func TestVehicleService_Delete_HasBookings(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, int64(1), int64(7)).Return(domain.ErrVehicleInUse)

	err := svc.Delete(context.Background(), 7, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVehicleInUse)
}

func TestVehicleService_List(t *testing.T) {
	repo := mocks.NewMockVehicleRepo(t)
	svc := NewVehicleService(repo, newTestLogger(t))

	vehicles := []*domain.Vehicle{
		{ID: 1, PlateNumber: "ABC-123", OwnerID: 7},
		{ID: 2, PlateNumber: "XYZ-789", OwnerID: 7},
	}
	repo.EXPECT().ListByOwner(mock.Anything, int64(7)).Return(vehicles, nil)

	result, err := svc.List(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
