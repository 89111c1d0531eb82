package booking

import (
	"context"
	"strings"
	"time"

	"github.com/NovaCutsHQ/barber-dashboard/internal/audit"
	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

type AddNoteInput struct {
	BarbershopID   string
	BarbershopName string
	UserID         string

	BookingID string
	Text      string
}

type AddNote struct {
	bookingSource
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewAddNote(
	repo domain.Repository,
	cache Cache,
	dispatcher *audit.Dispatcher,
) *AddNote {
	return &AddNote{
		bookingSource: bookingSource{repo: repo, cache: cache},
		audit:         dispatcher,
		now:           time.Now,
	}
}

// Execute appends a shop-side note to the booking's conversation. The two
// note logs stay separate; they are only merged by timestamp for display.
func (uc *AddNote) Execute(
	ctx context.Context,
	in AddNoteInput,
) (*models.Booking, error) {

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, httperr.ErrBusiness("empty_note")
	}

	b, err := uc.repo.GetByID(ctx, in.BarbershopID, in.BookingID)
	if err != nil {
		return nil, err
	}

	if b.BarbershopNotes == nil {
		b.BarbershopNotes = models.Notes{}
	}
	b.BarbershopNotes = append(b.BarbershopNotes, models.Note{
		Text:       text,
		Timestamp:  uc.now().UTC(),
		From:       "barbershop",
		AuthorID:   in.BarbershopID,
		AuthorName: in.BarbershopName,
	})

	if err := uc.repo.UpdateFields(ctx, b.ID, map[string]any{
		"barbershop_notes": b.BarbershopNotes,
	}); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, in.BarbershopID)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.UserID,
		Action:       "booking_note_added",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}

// MergedNotes is the display ordering of both parties' notes.
func MergedNotes(b *models.Booking) models.Notes {
	return domain.MergeNotes(b.ClientNotes, b.BarbershopNotes)
}
