package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NovaCutsHQ/barber-dashboard/internal/analytics"
	"github.com/NovaCutsHQ/barber-dashboard/internal/dto"
	domain "github.com/NovaCutsHQ/barber-dashboard/internal/domain/booking"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httpresp"
	"github.com/NovaCutsHQ/barber-dashboard/internal/middleware"
	ucBooking "github.com/NovaCutsHQ/barber-dashboard/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list       *ucBooking.List
	transition *ucBooking.Transition
	remove     *ucBooking.Delete
	addNote    *ucBooking.AddNote
}

func NewBookingHandler(
	list *ucBooking.List,
	transition *ucBooking.Transition,
	remove *ucBooking.Delete,
	addNote *ucBooking.AddNote,
) *BookingHandler {
	return &BookingHandler{
		list:       list,
		transition: transition,
		remove:     remove,
		addNote:    addNote,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	filter := domain.Filter{
		Status: c.Query("status"),
		Barber: c.Query("barber"),
		Query:  c.Query("q"),
	}

	result, err := h.list.Execute(c.Request.Context(), barbershopID, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	rows := make([]dto.BookingRowDTO, 0, len(result.Bookings))
	for _, b := range result.Bookings {
		rows = append(rows, dto.BookingRow(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": result.Bookings,
		"rows":     rows,
		"barbers":  result.Barbers,
		"total":    result.Total,
	})
}

// Today lists the bookings scheduled for the current calendar day.
func (h *BookingHandler) Today(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	result, err := h.list.Execute(c.Request.Context(), barbershopID, domain.Filter{})
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	bookings := analytics.OnDate(result.Bookings, today)

	c.JSON(http.StatusOK, gin.H{
		"date":     today.Format(analytics.DateLayout),
		"bookings": bookings,
		"total":    len(bookings),
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	id := c.Param("id")

	b, err := h.list.Get(c.Request.Context(), barbershopID, id)
	if err != nil {
		httperr.FromError(c, err, "Booking not found.")
		return
	}

	httpresp.OK(c, b)
}

// Conversation returns both note logs merged by timestamp for the chat view.
func (h *BookingHandler) Conversation(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	id := c.Param("id")

	b, err := h.list.Get(c.Request.Context(), barbershopID, id)
	if err != nil {
		httperr.FromError(c, err, "Booking not found.")
		return
	}

	c.JSON(http.StatusOK, dto.ConversationDTO{
		BookingID:  b.ID,
		ClientName: b.ClientName,
		Notes:      ucBooking.MergedNotes(b),
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.transition.Execute(c.Request.Context(), ucBooking.TransitionInput{
		BarbershopID: barbershopID,
		UserID:       userID,
		BookingID:    id,
		Status:       domain.Status(req.Status),
		Reason:       req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err, "Could not update booking status.")
		return
	}

	// The response is the record as persisted; clients patch their copy from
	// it instead of refetching the collection.
	httpresp.OK(c, b)
}

// ======================================================
// NOTES
// ======================================================

func (h *BookingHandler) AddNote(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.addNote.Execute(c.Request.Context(), ucBooking.AddNoteInput{
		BarbershopID: barbershopID,
		UserID:       userID,
		BookingID:    id,
		Text:         req.Text,
	})
	if err != nil {
		httperr.FromError(c, err, "Could not add note.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	if err := h.remove.Execute(c.Request.Context(), barbershopID, userID, id); err != nil {
		httperr.FromError(c, err, "Could not delete booking.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
