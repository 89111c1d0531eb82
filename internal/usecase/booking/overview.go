package booking

import (
	"context"
	"time"

	"github.com/NovaCutsHQ/barber-dashboard/internal/analytics"
	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

const overviewListLimit = 5

type Overview struct {
	bookingSource
	now func() time.Time
}

func NewOverview(repo domain.Repository, cache Cache) *Overview {
	return &Overview{
		bookingSource: bookingSource{repo: repo, cache: cache},
		now:           time.Now,
	}
}

type OverviewResult struct {
	Stats analytics.Summary `json:"stats"`

	TodayBookings []models.Booking `json:"today_bookings"`
	Upcoming      []models.Booking `json:"upcoming"`
	Recent        []models.Booking `json:"recent"`
}

// Execute builds the landing-page block: whole-collection stats plus today's,
// upcoming and recent bookings.
func (uc *Overview) Execute(
	ctx context.Context,
	barbershopID string,
) (*OverviewResult, error) {

	all, err := uc.all(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return &OverviewResult{
		Stats:         analytics.Summarize(all),
		TodayBookings: analytics.OnDate(all, today),
		Upcoming:      analytics.Upcoming(all, today, overviewListLimit),
		Recent:        analytics.Recent(all, overviewListLimit),
	}, nil
}
