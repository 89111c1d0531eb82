package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

func mkBooking(date, status, price string) models.Booking {
	return models.Booking{Date: date, Status: status, Price: price}
}

func day(s string) time.Time {
	d, _ := time.Parse(DateLayout, s)
	return d
}

func TestSumRevenueOnlyCompleted(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-10", "completed", "100"),
		mkBooking("2026-01-11", "completed", "50.5"),
		mkBooking("2026-01-12", "canceled", "999"),
		mkBooking("2026-01-13", "pending", "80"),
	}

	assert.Equal(t, 150.5, SumRevenue(bookings))
}

func TestSumRevenueJunkPricesCountAsZero(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-10", "completed", "abc"),
		mkBooking("2026-01-11", "completed", ""),
		mkBooking("2026-01-12", "completed", "30"),
	}

	assert.Equal(t, 30.0, SumRevenue(bookings))
}

func TestCompletionRateRounds(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-10", "completed", ""),
		mkBooking("2026-01-11", "completed", ""),
		mkBooking("2026-01-12", "canceled", ""),
	}

	// 2/3 = 66.67 -> 67
	assert.Equal(t, 67, CompletionRate(bookings))
	assert.Equal(t, 33, CancellationRate(bookings))
}

func TestRatesOnEmptySetAreZero(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil))
	assert.Equal(t, 0, CancellationRate(nil))
	assert.Equal(t, 0.0, AverageRevenue(nil))
}

func TestFilterByDateRangeInclusiveBounds(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-09", "pending", ""),
		mkBooking("2026-01-10", "pending", ""),
		mkBooking("2026-01-15", "pending", ""),
		mkBooking("2026-01-20", "pending", ""),
		mkBooking("2026-01-21", "pending", ""),
		mkBooking("not-a-date", "pending", ""),
	}

	got := FilterByDateRange(bookings, day("2026-01-10"), day("2026-01-20"))

	assert.Len(t, got, 3)
	assert.Equal(t, "2026-01-10", got[0].Date)
	assert.Equal(t, "2026-01-20", got[2].Date)
}

func TestCountByStatusSeedsAllFourKeys(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-10", "pending", ""),
		mkBooking("2026-01-10", "pending", ""),
		mkBooking("2026-01-10", "completed", ""),
		mkBooking("2026-01-10", "in-progress", ""),
		mkBooking("2026-01-10", "no-show", ""),
	}

	counts := CountByStatus(bookings)

	assert.Len(t, counts, 4)
	assert.Equal(t, 2, counts[domain.StatusPending])
	assert.Equal(t, 0, counts[domain.StatusConfirmed])
	assert.Equal(t, 0, counts[domain.StatusCanceled])
	assert.Equal(t, 1, counts[domain.StatusCompleted])
}

func TestGroupRevenueByDateAscendingNoDuplicates(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-12", "completed", "40"),
		mkBooking("2026-01-10", "completed", "100"),
		mkBooking("2026-01-10", "completed", "60"),
		mkBooking("2026-01-11", "canceled", "80"),
		mkBooking("2026-01-11", "completed", ""),
	}

	points := GroupRevenueByDate(bookings)

	assert.Equal(t, []RevenuePoint{
		{Date: "2026-01-10", Revenue: 160},
		{Date: "2026-01-12", Revenue: 40},
	}, points)
}

func TestUniqueCountClientKeyFallsBackToName(t *testing.T) {
	bookings := []models.Booking{
		{ClientID: "c1", ClientName: "Ana"},
		{ClientID: "c1", ClientName: "Ana B."},
		{ClientID: "", ClientName: "Walk-in"},
		{ClientID: "", ClientName: "Walk-in"},
	}

	assert.Equal(t, 2, UniqueCount(bookings, ClientKey))
}

func TestAverageRevenueDividesByPricedCompleted(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("2026-01-10", "completed", "100"),
		mkBooking("2026-01-11", "completed", "50"),
		mkBooking("2026-01-12", "completed", ""),
		mkBooking("2026-01-13", "pending", "80"),
	}

	assert.Equal(t, 75.0, AverageRevenue(bookings))
}

func TestCountByBarberOrdersByCountThenName(t *testing.T) {
	bookings := []models.Booking{
		{BarberName: "Zeca"},
		{BarberName: "Zeca"},
		{BarberName: "Alan"},
		{BarberName: "Caio"},
		{BarberName: "Alan"},
		{BarberName: ""},
	}

	got := CountByBarber(bookings)

	assert.Equal(t, []NameCount{
		{Name: "Alan", Count: 2},
		{Name: "Zeca", Count: 2},
		{Name: "Caio", Count: 1},
	}, got)
}
