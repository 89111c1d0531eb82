package booking

import (
	"context"
	"time"

	"github.com/NovaCutsHQ/barber-dashboard/internal/analytics"
	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
)

type Analytics struct {
	bookingSource
}

func NewAnalytics(repo domain.Repository, cache Cache) *Analytics {
	return &Analytics{bookingSource: bookingSource{repo: repo, cache: cache}}
}

type AnalyticsResult struct {
	Start string `json:"start"`
	End   string `json:"end"`

	Summary        analytics.Summary        `json:"summary"`
	StatusCounts   map[domain.Status]int    `json:"status_counts"`
	RevenueByDate  []analytics.RevenuePoint `json:"revenue_by_date"`
	AverageRevenue float64                  `json:"average_revenue"`

	ServicePopularity []analytics.NameCount `json:"service_popularity"`
	BarberPerformance []analytics.NameCount `json:"barber_performance"`
}

// Execute recomputes every metric from the full in-memory set restricted to
// [start, end]. Nothing is incremental; a new range means a fresh pass.
func (uc *Analytics) Execute(
	ctx context.Context,
	barbershopID string,
	start, end time.Time,
) (*AnalyticsResult, error) {

	all, err := uc.all(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	inRange := analytics.FilterByDateRange(all, start, end)

	return &AnalyticsResult{
		Start:             start.Format(analytics.DateLayout),
		End:               end.Format(analytics.DateLayout),
		Summary:           analytics.Summarize(inRange),
		StatusCounts:      analytics.CountByStatus(inRange),
		RevenueByDate:     analytics.GroupRevenueByDate(inRange),
		AverageRevenue:    analytics.AverageRevenue(inRange),
		ServicePopularity: analytics.CountByService(inRange),
		BarberPerformance: analytics.CountByBarber(inRange),
	}, nil
}
