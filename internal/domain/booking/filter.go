package booking

import (
	"sort"
	"strings"

	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// FilterAll is the unset value for a filter dimension.
const FilterAll = "all"

// Filter is the combined status / barber / free-text selection from the
// appointments view. Dimensions AND together; an unset dimension ("all" or
// empty) matches everything.
type Filter struct {
	Status string
	Barber string
	Query  string
}

func (f Filter) Match(b models.Booking) bool {
	if f.Status != "" && f.Status != FilterAll && b.Status != f.Status {
		return false
	}

	if f.Barber != "" && f.Barber != FilterAll && b.BarberName != f.Barber {
		return false
	}

	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(b.ClientName), q) &&
			!strings.Contains(strings.ToLower(b.ServiceName), q) {
			return false
		}
	}

	return true
}

func (f Filter) Apply(bookings []models.Booking) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}

// UniqueBarberNames feeds the barber filter dropdown.
func UniqueBarberNames(bookings []models.Booking) []string {
	seen := map[string]bool{}
	var names []string
	for _, b := range bookings {
		if b.BarberName == "" || seen[b.BarberName] {
			continue
		}
		seen[b.BarberName] = true
		names = append(names, b.BarberName)
	}
	sort.Strings(names)
	return names
}
