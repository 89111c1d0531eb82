package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NovaCutsHQ/barber-dashboard/internal/analytics"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/middleware"
	ucBooking "github.com/NovaCutsHQ/barber-dashboard/internal/usecase/booking"
)

const defaultRangeDays = 30

type AnalyticsHandler struct {
	analytics *ucBooking.Analytics
	overview  *ucBooking.Overview
}

func NewAnalyticsHandler(
	analyticsUC *ucBooking.Analytics,
	overviewUC *ucBooking.Overview,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analyticsUC,
		overview:  overviewUC,
	}
}

// Get serves the analytics page. The range defaults to the last 30 days;
// both bounds are inclusive.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -defaultRangeDays)

	if s := c.Query("start"); s != "" {
		d, ok := analytics.ParseDate(s)
		if !ok {
			httperr.BadRequest(c, "invalid_start_date", "Start date must be YYYY-MM-DD.")
			return
		}
		start = d
	}

	if s := c.Query("end"); s != "" {
		d, ok := analytics.ParseDate(s)
		if !ok {
			httperr.BadRequest(c, "invalid_end_date", "End date must be YYYY-MM-DD.")
			return
		}
		end = d
	}

	start = truncateToDate(start)
	end = truncateToDate(end)

	if end.Before(start) {
		httperr.BadRequest(c, "invalid_date_range", "End date is before start date.")
		return
	}

	result, err := h.analytics.Execute(c.Request.Context(), barbershopID, start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_load_analytics", "Could not load analytics data.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Overview serves the dashboard landing block.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	result, err := h.overview.Execute(c.Request.Context(), barbershopID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_overview", "Could not load dashboard data.")
		return
	}

	c.JSON(http.StatusOK, result)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
