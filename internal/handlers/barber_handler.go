package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaCutsHQ/barber-dashboard/internal/audit"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httpresp"
	"github.com/NovaCutsHQ/barber-dashboard/internal/middleware"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

type BarberHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewBarberHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{db: db, audit: auditDispatcher}
}

type CreateBarberRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Address       string `json:"address"`
}

type UpdateBarberRequest struct {
	FullName      *string `json:"full_name,omitempty"`
	Email         *string `json:"email,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Address       *string `json:"address,omitempty"`
	IsAvailable   *bool   `json:"is_available,omitempty"`
}

func (h *BarberHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("full_name asc").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Could not load staff.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"barbers": barbers, "total": len(barbers)})
}

func (h *BarberHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.FullName) == "" {
		httperr.BadRequest(c, "empty_name", "Barber name cannot be empty.")
		return
	}

	barber := models.Barber{
		BarbershopID:  barbershopID,
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		IsAvailable:   true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Could not create barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "barber_created",
		Entity:       "barber",
		EntityID:     &barber.ID,
		Metadata:     gin.H{"full_name": barber.FullName},
	})

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&barber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barber not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Could not load barber.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			httperr.BadRequest(c, "empty_name", "Barber name cannot be empty.")
			return
		}
		barber.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		barber.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.ContactNumber != nil {
		barber.ContactNumber = *req.ContactNumber
	}
	if req.Address != nil {
		barber.Address = *req.Address
	}
	if req.IsAvailable != nil {
		barber.IsAvailable = *req.IsAvailable
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Could not save barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "barber_updated",
		Entity:       "barber",
		EntityID:     &barber.ID,
	})

	httpresp.OK(c, barber)
}

// Delete removes the profile only. Bookings keep their embedded barber
// id/name, so history stays readable.
func (h *BarberHandler) Delete(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	result := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.Barber{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Could not delete barber.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "barber_deleted",
		Entity:       "barber",
		EntityID:     &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
