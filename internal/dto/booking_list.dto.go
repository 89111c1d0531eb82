package dto

import "github.com/NovaCutsHQ/barber-dashboard/internal/models"

// BookingRowDTO is the compact shape the appointments table renders.
type BookingRowDTO struct {
	ID          string `json:"id"`
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`
	StyleName   string `json:"style_name"`
	BarberName  string `json:"barber_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Price       string `json:"price,omitempty"`
	IsEmergency bool   `json:"is_emergency"`
}

func BookingRow(b models.Booking) BookingRowDTO {
	return BookingRowDTO{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ServiceName: b.ServiceName,
		StyleName:   b.StyleName,
		BarberName:  b.BarberName,
		Date:        b.Date,
		Time:        b.Time,
		Status:      b.Status,
		Price:       b.Price,
		IsEmergency: b.IsEmergency,
	}
}

// ConversationDTO is one booking's merged note thread.
type ConversationDTO struct {
	BookingID  string       `json:"booking_id"`
	ClientName string       `json:"client_name"`
	Notes      models.Notes `json:"notes"`
}
