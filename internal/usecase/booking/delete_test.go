package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

func TestDeleteExecute(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	stored := &models.Booking{ID: "bk-1", BarbershopID: "shop-1"}

	repo.On("GetByID", mock.Anything, "shop-1", "bk-1").Return(stored, nil)
	repo.On("Delete", mock.Anything, "bk-1").Return(nil)
	cache.On("Invalidate", mock.Anything, "shop-1").Return(nil)

	uc := NewDelete(repo, cache, nil)

	err := uc.Execute(context.Background(), "shop-1", "user-1", "bk-1")

	require.NoError(t, err)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDeleteMissingBookingIsAnError(t *testing.T) {
	repo := new(mockRepository)

	repo.On("GetByID", mock.Anything, "shop-1", "ghost").
		Return(nil, httperr.ErrBusiness("booking_not_found"))

	uc := NewDelete(repo, nil, nil)

	err := uc.Execute(context.Background(), "shop-1", "user-1", "ghost")

	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteIsScopedToOwner(t *testing.T) {
	repo := new(mockRepository)

	// the other shop's booking never comes back from an owner-scoped lookup
	repo.On("GetByID", mock.Anything, "shop-2", "bk-1").
		Return(nil, httperr.ErrBusiness("booking_not_found"))

	uc := NewDelete(repo, nil, nil)

	err := uc.Execute(context.Background(), "shop-2", "user-9", "bk-1")

	require.Error(t, err)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
