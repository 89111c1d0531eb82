package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)
}

func newTransitionForTest(repo *mockRepository, cache Cache) *Transition {
	uc := NewTransition(repo, cache, nil)
	uc.now = fixedNow
	return uc
}

func TestTransitionExecute(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	stored := &models.Booking{
		ID:           "bk-1",
		BarbershopID: "shop-1",
		Status:       "pending",
	}

	repo.On("GetByID", mock.Anything, "shop-1", "bk-1").Return(stored, nil)
	repo.On("UpdateFields", mock.Anything, "bk-1", mock.MatchedBy(func(fields map[string]any) bool {
		if fields["status"] != "confirmed" {
			return false
		}
		history, ok := fields["status_history"].(models.StatusHistory)
		return ok && len(history) == 1
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, "shop-1").Return(nil)

	uc := newTransitionForTest(repo, cache)

	b, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID: "shop-1",
		UserID:       "user-1",
		BookingID:    "bk-1",
		Status:       domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
	require.Len(t, b.StatusHistory, 1)
	assert.Equal(t, fixedNow(), b.StatusHistory[0].Timestamp)
	assert.Equal(t, "barber", b.StatusHistory[0].UpdatedBy)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestTransitionCanceledWritesBarberReason(t *testing.T) {
	repo := new(mockRepository)
	cache := new(mockCache)

	stored := &models.Booking{ID: "bk-1", BarbershopID: "shop-1", Status: "confirmed"}

	repo.On("GetByID", mock.Anything, "shop-1", "bk-1").Return(stored, nil)
	repo.On("UpdateFields", mock.Anything, "bk-1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["barber_reason"] == "client asked to reschedule"
	})).Return(nil)
	cache.On("Invalidate", mock.Anything, "shop-1").Return(nil)

	uc := newTransitionForTest(repo, cache)

	b, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID: "shop-1",
		UserID:       "user-1",
		BookingID:    "bk-1",
		Status:       domain.StatusCanceled,
		Reason:       "client asked to reschedule",
	})

	require.NoError(t, err)
	assert.Equal(t, "client asked to reschedule", b.BarberReason)

	repo.AssertExpectations(t)
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	repo := new(mockRepository)

	uc := newTransitionForTest(repo, nil)

	_, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID: "shop-1",
		BookingID:    "bk-1",
		Status:       "done",
	})

	require.Error(t, err)
	code, ok := httperr.BusinessCode(err)
	assert.True(t, ok)
	assert.Equal(t, "invalid_status", code)

	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionMissingBookingPropagatesNotFound(t *testing.T) {
	repo := new(mockRepository)

	repo.On("GetByID", mock.Anything, "shop-1", "ghost").
		Return(nil, httperr.ErrBusiness("booking_not_found"))

	uc := newTransitionForTest(repo, nil)

	_, err := uc.Execute(context.Background(), TransitionInput{
		BarbershopID: "shop-1",
		BookingID:    "ghost",
		Status:       domain.StatusConfirmed,
	})

	require.Error(t, err)
	assert.True(t, httperr.IsNotFound(err))

	repo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}
