package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barber is a staff profile managed from the dashboard. Bookings reference
// barbers by id/name only; deleting a barber leaves those references as-is.
type Barber struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershop_id"`

	FullName      string `gorm:"size:100;not null" json:"full_name"`
	Email         string `gorm:"size:100" json:"email"`
	ContactNumber string `gorm:"size:30" json:"contact_number"`
	Address       string `gorm:"size:255" json:"address"`
	IsAvailable   bool   `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
