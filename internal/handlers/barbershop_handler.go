package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httpresp"
	"github.com/NovaCutsHQ/barber-dashboard/internal/middleware"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

type UpdateBarbershopRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Could not load barbershop settings.")
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", barbershopID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_barbershop", "Could not load barbershop settings.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "empty_name", "Barbershop name cannot be empty.")
			return
		}
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Could not save barbershop settings.")
		return
	}

	httpresp.OK(c, shop)
}
