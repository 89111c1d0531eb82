package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServiceAvailable = "Available"
	ServiceDisabled  = "Disabled"
)

// Service is a catalog entry; styles belong to a service.
type Service struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershop_id"`

	Title         string `gorm:"size:100;not null" json:"title"`
	FeaturedImage string `gorm:"size:512" json:"featured_image"`
	Status        string `gorm:"size:20;default:'Available'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Style struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershop_id"`
	ServiceID    string `gorm:"size:36;index;not null" json:"service_id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	Price         string `gorm:"size:20" json:"price"`
	FeaturedImage string `gorm:"size:512" json:"featured_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Style) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
