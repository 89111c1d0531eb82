package booking

import (
	"context"

	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// Repository is the booking collection as the dashboard sees it: owner-scoped
// reads, partial updates and hard deletes. The backing store assigns ids on
// create.
type Repository interface {
	ListByOwner(
		ctx context.Context,
		barbershopID string,
	) ([]models.Booking, error)

	GetByID(
		ctx context.Context,
		barbershopID string,
		id string,
	) (*models.Booking, error)

	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// UpdateFields sends only the changed columns, never a full overwrite.
	// The id and owner reference are immutable and must not appear in fields.
	UpdateFields(
		ctx context.Context,
		id string,
		fields map[string]any,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error
}
