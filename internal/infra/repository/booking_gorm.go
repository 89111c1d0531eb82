package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *BookingGormRepository) ListByOwner(
	ctx context.Context,
	barbershopID string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("date ASC, time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	barbershopID string,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// UpdateFields writes only the given columns. The read-merge-write cycle for
// the history array happens in the use case; two operators racing on the same
// booking can still lose a history entry (last write wins), which mirrors the
// store's lack of an atomic array append.
func (r *BookingGormRepository) UpdateFields(
	ctx context.Context,
	id string,
	fields map[string]any,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(fields)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}
	return nil
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id string,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
