package booking

import (
	"context"
	"log"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// Cache is the slice of the booking cache the use cases need. Cache failures
// are never fatal; reads fall through to the repository and writes are
// best-effort.
type Cache interface {
	Get(ctx context.Context, barbershopID string) ([]models.Booking, error)
	Set(ctx context.Context, barbershopID string, bookings []models.Booking) error
	Invalidate(ctx context.Context, barbershopID string) error
}

type bookingSource struct {
	repo  domain.Repository
	cache Cache
}

func (s bookingSource) all(ctx context.Context, barbershopID string) ([]models.Booking, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, barbershopID); err != nil {
			log.Println("booking cache read:", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	bookings, err := s.repo.ListByOwner(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, barbershopID, bookings); err != nil {
			log.Println("booking cache write:", err)
		}
	}

	return bookings, nil
}

func (s bookingSource) invalidate(ctx context.Context, barbershopID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, barbershopID); err != nil {
		log.Println("booking cache invalidate:", err)
	}
}
