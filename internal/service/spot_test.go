package service

import (
	"context"
	"testing"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/FarHanZzzz/SmartUrban/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpotService_Create_AppliesDefaults(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, spot *domain.ParkingSpot) {
		spot.ID = 1
	}).Return(nil)

	spot, err := svc.Create(context.Background(), domain.CreateSpotInput{
		Location:   "Central Garage",
		SpotNumber: "A-12",
		HourlyRate: 5.0,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), spot.ID)
	assert.Equal(t, 1, spot.Capacity)
	assert.Equal(t, "Standard", spot.SpotType)
	assert.True(t, spot.IsAvailable)
}

func TestSpotService_Create_ExplicitlyUnavailable(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	unavailable := false
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	spot, err := svc.Create(context.Background(), domain.CreateSpotInput{
		Location:    "Central Garage",
		SpotNumber:  "A-13",
		IsAvailable: &unavailable,
	})

	require.NoError(t, err)
	assert.False(t, spot.IsAvailable)
}

func TestSpotService_Create_MissingLocation(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	_, err := svc.Create(context.Background(), domain.CreateSpotInput{SpotNumber: "A-12"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpotService_Create_NegativeCapacity(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	_, err := svc.Create(context.Background(), domain.CreateSpotInput{
		Location:   "Central Garage",
		SpotNumber: "A-12",
		Capacity:   -1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "must not be negative")
}

func TestSpotService_Create_NegativeRate(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	_, err := svc.Create(context.Background(), domain.CreateSpotInput{
		Location:   "Central Garage",
		SpotNumber: "A-12",
		HourlyRate: -1.0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpotService_Update_Empty(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	err := svc.Update(context.Background(), 1, domain.UpdateSpotInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpotService_Update_ZeroCapacity(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	capacity := 0
	err := svc.Update(context.Background(), 1, domain.UpdateSpotInput{Capacity: &capacity})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSpotService_Update_Success(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	rate := 7.5
	input := domain.UpdateSpotInput{HourlyRate: &rate}
	repo.EXPECT().Update(mock.Anything, int64(1), input).Return(nil)

	err := svc.Update(context.Background(), 1, input)

	require.NoError(t, err)
}

func TestSpotService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	rate := 7.5
	input := domain.UpdateSpotInput{HourlyRate: &rate}
	repo.EXPECT().Update(mock.Anything, int64(99), input).Return(domain.ErrSpotNotFound)

	err := svc.Update(context.Background(), 99, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestSpotService_List_PassesFilter(t *testing.T) {
	repo := mocks.NewMockSpotRepo(t)
	svc := NewSpotService(repo)

	available := true
	zone := "B"
	filter := domain.SpotFilter{Available: &available, Zone: &zone}
	spots := []*domain.ParkingSpot{{ID: 1, Zone: "B"}}
	repo.EXPECT().List(mock.Anything, filter).Return(spots, nil)

	result, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
