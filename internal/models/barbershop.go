package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Barbershop is the tenant. Its id is the owner reference every other
// collection is scoped by.
type Barbershop struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Barbershop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
