package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

func ownerBookings() []models.Booking {
	return []models.Booking{
		{ID: "1", Status: "pending", BarberName: "Alan", ClientName: "Maria"},
		{ID: "2", Status: "completed", BarberName: "Zeca", ClientName: "Joao"},
		{ID: "3", Status: "pending", BarberName: "Zeca", ClientName: "Pedro"},
	}
}

func TestListExecuteFiltersButKeepsFullBarberSet(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	cache.On("Get", mock.Anything, "shop-1").Return(nil, nil)
	repo.On("ListByOwner", mock.Anything, "shop-1").Return(ownerBookings(), nil)
	cache.On("Set", mock.Anything, "shop-1", ownerBookings()).Return(nil)

	uc := NewList(repo, cache)

	result, err := uc.Execute(context.Background(), "shop-1", domain.Filter{Status: "pending"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Bookings, 2)
	// the dropdown set comes from the unfiltered collection
	assert.Equal(t, []string{"Alan", "Zeca"}, result.Barbers)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestListExecuteServesFromCache(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	cache.On("Get", mock.Anything, "shop-1").Return(ownerBookings(), nil)

	uc := NewList(repo, cache)

	result, err := uc.Execute(context.Background(), "shop-1", domain.Filter{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)

	repo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestListExecuteCacheFailureFallsThrough(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	cache.On("Get", mock.Anything, "shop-1").Return(nil, errors.New("redis down"))
	repo.On("ListByOwner", mock.Anything, "shop-1").Return(ownerBookings(), nil)
	cache.On("Set", mock.Anything, "shop-1", ownerBookings()).Return(errors.New("redis down"))

	uc := NewList(repo, cache)

	result, err := uc.Execute(context.Background(), "shop-1", domain.Filter{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
}

func TestListWorksWithoutCache(t *testing.T) {
	repo := new(mockRepository)

	repo.On("ListByOwner", mock.Anything, "shop-1").Return(ownerBookings(), nil)

	uc := NewList(repo, nil)

	result, err := uc.Execute(context.Background(), "shop-1", domain.Filter{})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
}
