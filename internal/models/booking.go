package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is created by the client-facing app; the dashboard only reads it,
// moves it through statuses and (hard) deletes it.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarbershopID string `gorm:"size:36;index;not null" json:"barbershop_id"`

	ClientID   string `gorm:"size:36" json:"client_id"`
	ClientName string `gorm:"size:100" json:"client_name"`

	ServiceID   string `gorm:"size:36" json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`

	StyleID   string `gorm:"size:36" json:"style_id"`
	StyleName string `gorm:"size:100" json:"style_name"`

	BarberID   string `gorm:"size:36" json:"barber_id"`
	BarberName string `gorm:"size:100" json:"barber_name"`

	// Canonical calendar date, YYYY-MM-DD. Time is free text from the
	// booking app and is not validated here.
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:20" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Reason set by the client when they cancel; BarberReason set by the
	// shop when it declines or cancels.
	Reason       string `gorm:"size:255" json:"reason,omitempty"`
	BarberReason string `gorm:"size:255" json:"barber_reason,omitempty"`

	// Price is stored as entered ("150", "50.5", sometimes junk). Revenue
	// aggregation parses it leniently and treats junk as zero.
	Price string `gorm:"size:20" json:"price,omitempty"`

	IsHomeService  bool `json:"is_home_service"`
	IsEmergency    bool `json:"is_emergency"`
	IsStylePackage bool `json:"is_style_package"`

	// Location is set by the client app on home-service bookings; Feedback
	// appears once the client rates a completed one. The dashboard displays
	// both and writes neither.
	Location Location `gorm:"type:jsonb" json:"location"`
	Feedback Feedback `gorm:"type:jsonb" json:"feedback"`

	StatusHistory   StatusHistory `gorm:"type:jsonb" json:"status_history"`
	ClientNotes     Notes         `gorm:"type:jsonb" json:"client_notes"`
	BarbershopNotes Notes         `gorm:"type:jsonb" json:"barbershop_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
