package booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ListByOwner(ctx context.Context, barbershopID string) ([]models.Booking, error) {
	args := m.Called(ctx, barbershopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, barbershopID, id string) (*models.Booking, error) {
	args := m.Called(ctx, barbershopID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, barbershopID string) ([]models.Booking, error) {
	args := m.Called(ctx, barbershopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, barbershopID string, bookings []models.Booking) error {
	args := m.Called(ctx, barbershopID, bookings)
	return args.Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, barbershopID string) error {
	args := m.Called(ctx, barbershopID)
	return args.Error(0)
}
