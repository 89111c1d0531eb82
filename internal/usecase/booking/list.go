package booking

import (
	"context"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

type List struct {
	bookingSource
}

func NewList(repo domain.Repository, cache Cache) *List {
	return &List{bookingSource: bookingSource{repo: repo, cache: cache}}
}

type ListResult struct {
	Bookings []models.Booking `json:"bookings"`
	// Barbers is the distinct set across the owner's whole collection, not
	// just the filtered slice, so the filter dropdown stays stable.
	Barbers []string `json:"barbers"`
	Total   int      `json:"total"`
}

// Execute fetches the owner's full booking set (cached) and applies the
// combined status/barber/search filter.
func (uc *List) Execute(
	ctx context.Context,
	barbershopID string,
	filter domain.Filter,
) (*ListResult, error) {

	all, err := uc.all(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(all)

	return &ListResult{
		Bookings: filtered,
		Barbers:  domain.UniqueBarberNames(all),
		Total:    len(filtered),
	}, nil
}

// Get loads one booking, owner-scoped.
func (uc *List) Get(
	ctx context.Context,
	barbershopID string,
	bookingID string,
) (*models.Booking, error) {
	return uc.repo.GetByID(ctx, barbershopID, bookingID)
}
