package booking

import (
	"context"

	"github.com/NovaCutsHQ/barber-dashboard/internal/audit"
	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
)

type Delete struct {
	bookingSource
	audit *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	cache Cache,
	dispatcher *audit.Dispatcher,
) *Delete {
	return &Delete{
		bookingSource: bookingSource{repo: repo, cache: cache},
		audit:         dispatcher,
	}
}

// Execute hard-deletes one booking. A missing id is an error, never a silent
// success. References held by other records (barber names, service names)
// are left alone.
func (uc *Delete) Execute(
	ctx context.Context,
	barbershopID string,
	userID string,
	bookingID string,
) error {

	// Owner-scoped lookup first so one shop cannot delete another's booking.
	b, err := uc.repo.GetByID(ctx, barbershopID, bookingID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, b.ID); err != nil {
		return err
	}

	uc.invalidate(ctx, barbershopID)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "booking_deleted",
		Entity:       "booking",
		EntityID:     &bookingID,
	})

	return nil
}
