package booking

import (
	"context"
	"time"

	"github.com/NovaCutsHQ/barber-dashboard/internal/audit"
	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type TransitionInput struct {
	BarbershopID string
	UserID       string

	BookingID string
	Status    domain.Status
	Reason    string
}

// ======================================================
// USE CASE
// ======================================================

type Transition struct {
	bookingSource
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewTransition(
	repo domain.Repository,
	cache Cache,
	dispatcher *audit.Dispatcher,
) *Transition {
	return &Transition{
		bookingSource: bookingSource{repo: repo, cache: cache},
		audit:         dispatcher,
		now:           time.Now,
	}
}

// Execute moves one booking to the target status, appending to its history
// log and persisting only the changed fields. The returned copy is exactly
// what was written, so callers can patch their in-memory list without a
// refetch.
//
// The read-merge-write on the history array is not atomic: two operators
// updating the same booking at once can lose an entry (last write wins).
// That matches the store's semantics and is accepted.
func (uc *Transition) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Booking, error) {

	if !domain.IsValid(in.Status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	b, err := uc.repo.GetByID(ctx, in.BarbershopID, in.BookingID)
	if err != nil {
		return nil, err
	}

	domain.ApplyTransition(b, in.Status, in.Reason, uc.now().UTC())

	fields := map[string]any{
		"status":         b.Status,
		"status_history": b.StatusHistory,
	}
	if in.Status == domain.StatusCanceled && in.Reason != "" {
		fields["barber_reason"] = b.BarberReason
	}

	if err := uc.repo.UpdateFields(ctx, b.ID, fields); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, in.BarbershopID)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.UserID,
		Action:       "booking_status_updated",
		Entity:       "booking",
		EntityID:     &b.ID,
		Metadata: map[string]any{
			"status": string(in.Status),
			"reason": in.Reason,
		},
	})

	return b, nil
}
