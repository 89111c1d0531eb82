package analytics

import (
	"sort"
	"time"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// Summary is the dashboard overview block.
type Summary struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CompletedBookings int     `json:"completed_bookings"`
	CanceledBookings  int     `json:"canceled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	UniqueCustomers   int     `json:"unique_customers"`
	UniqueServices    int     `json:"unique_services"`
	UniqueBarbers     int     `json:"unique_barbers"`
	CompletionRate    int     `json:"completion_rate"`
	CancellationRate  int     `json:"cancellation_rate"`
}

func Summarize(bookings []models.Booking) Summary {
	counts := CountByStatus(bookings)
	return Summary{
		TotalBookings:     len(bookings),
		PendingBookings:   counts[domain.StatusPending],
		ConfirmedBookings: counts[domain.StatusConfirmed],
		CompletedBookings: counts[domain.StatusCompleted],
		CanceledBookings:  counts[domain.StatusCanceled],
		TotalRevenue:      SumRevenue(bookings),
		UniqueCustomers:   UniqueCount(bookings, ClientKey),
		UniqueServices:    UniqueCount(bookings, ServiceKey),
		UniqueBarbers:     UniqueCount(bookings, BarberKey),
		CompletionRate:    CompletionRate(bookings),
		CancellationRate:  CancellationRate(bookings),
	}
}

// OnDate keeps bookings that fall exactly on the given day.
func OnDate(bookings []models.Booking, day time.Time) []models.Booking {
	key := day.Format(DateLayout)
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		if b.Date == key {
			out = append(out, b)
		}
	}
	return out
}

// Upcoming returns the next bookings on or after today, skipping canceled
// ones, soonest first.
func Upcoming(bookings []models.Booking, today time.Time, limit int) []models.Booking {
	out := make([]models.Booking, 0)
	for _, b := range bookings {
		d, ok := ParseDate(b.Date)
		if !ok || d.Before(today) {
			continue
		}
		if domain.Status(b.Status) == domain.StatusCanceled {
			continue
		}
		out = append(out, b)
	}
	sortByDateTime(out, true)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Recent returns the latest bookings, newest first.
func Recent(bookings []models.Booking, limit int) []models.Booking {
	out := make([]models.Booking, len(bookings))
	copy(out, bookings)
	sortByDateTime(out, false)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Dates are canonical YYYY-MM-DD, so date+time compares lexically. Free-text
// times sort with their peers as best they can.
func sortByDateTime(bookings []models.Booking, ascending bool) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a := bookings[i].Date + "T" + bookings[i].Time
		b := bookings[j].Date + "T" + bookings[j].Time
		if ascending {
			return a < b
		}
		return a > b
	})
}
