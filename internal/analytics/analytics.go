// Package analytics derives the dashboard's display metrics from an
// in-memory booking set. Every function is pure and total: malformed dates
// or prices degrade to zero / exclusion, never to an error.
package analytics

import (
	"math"
	"sort"
	"time"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// FilterByDateRange keeps bookings whose date falls inside [start, end],
// both bounds inclusive. Bookings with unparseable dates are excluded.
func FilterByDateRange(bookings []models.Booking, start, end time.Time) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		d, ok := ParseDate(b.Date)
		if !ok {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// CountByStatus counts the four analytics statuses. Bookings in any other
// status (in-progress, declined, no-show) are silently left out, matching
// the status breakdown the charts show.
func CountByStatus(bookings []models.Booking) map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.AnalyticsStatuses))
	for _, s := range domain.AnalyticsStatuses {
		counts[s] = 0
	}
	for _, b := range bookings {
		s := domain.Status(b.Status)
		if _, ok := counts[s]; ok {
			counts[s]++
		}
	}
	return counts
}

// SumRevenue totals prices over completed bookings only.
func SumRevenue(bookings []models.Booking) float64 {
	var sum float64
	for _, b := range bookings {
		if domain.Status(b.Status) != domain.StatusCompleted {
			continue
		}
		sum += ParsePrice(b.Price)
	}
	return sum
}

// RevenuePoint is one day on the revenue chart.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// GroupRevenueByDate buckets completed-booking revenue by calendar date,
// ascending, one point per date.
func GroupRevenueByDate(bookings []models.Booking) []RevenuePoint {
	byDate := map[string]float64{}
	for _, b := range bookings {
		if domain.Status(b.Status) != domain.StatusCompleted || b.Price == "" {
			continue
		}
		d, ok := ParseDate(b.Date)
		if !ok {
			continue
		}
		key := d.Format(DateLayout)
		byDate[key] += ParsePrice(b.Price)
	}

	points := make([]RevenuePoint, 0, len(byDate))
	for date, revenue := range byDate {
		points = append(points, RevenuePoint{Date: date, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// UniqueCount sizes the set of key values over the bookings.
func UniqueCount(bookings []models.Booking, key func(models.Booking) string) int {
	seen := map[string]bool{}
	for _, b := range bookings {
		seen[key(b)] = true
	}
	return len(seen)
}

// ClientKey identifies a customer, falling back to the display name for
// bookings created before client ids existed.
func ClientKey(b models.Booking) string {
	if b.ClientID != "" {
		return b.ClientID
	}
	return b.ClientName
}

func ServiceKey(b models.Booking) string { return b.ServiceName }

func BarberKey(b models.Booking) string { return b.BarberName }

// CompletionRate is round(completed/total*100); zero on an empty set.
func CompletionRate(bookings []models.Booking) int {
	return statusRate(bookings, domain.StatusCompleted)
}

// CancellationRate is round(canceled/total*100); zero on an empty set.
func CancellationRate(bookings []models.Booking) int {
	return statusRate(bookings, domain.StatusCanceled)
}

func statusRate(bookings []models.Booking, status domain.Status) int {
	if len(bookings) == 0 {
		return 0
	}
	matching := 0
	for _, b := range bookings {
		if domain.Status(b.Status) == status {
			matching++
		}
	}
	return int(math.Round(float64(matching) / float64(len(bookings)) * 100))
}

// AverageRevenue is revenue per completed booking that carries a price.
func AverageRevenue(bookings []models.Booking) float64 {
	completed := 0
	for _, b := range bookings {
		if domain.Status(b.Status) == domain.StatusCompleted && b.Price != "" {
			completed++
		}
	}
	if completed == 0 {
		return 0
	}
	return SumRevenue(bookings) / float64(completed)
}

// NameCount is a popularity bucket (service popularity, barber performance).
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func CountByService(bookings []models.Booking) []NameCount {
	return countBy(bookings, ServiceKey)
}

func CountByBarber(bookings []models.Booking) []NameCount {
	return countBy(bookings, BarberKey)
}

func countBy(bookings []models.Booking, key func(models.Booking) string) []NameCount {
	counts := map[string]int{}
	for _, b := range bookings {
		if k := key(b); k != "" {
			counts[k]++
		}
	}
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
