package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaCutsHQ/barber-dashboard/internal/audit"
	"github.com/NovaCutsHQ/barber-dashboard/internal/blob"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httperr"
	"github.com/NovaCutsHQ/barber-dashboard/internal/httpresp"
	"github.com/NovaCutsHQ/barber-dashboard/internal/middleware"
	"github.com/NovaCutsHQ/barber-dashboard/internal/models"
)

// maxUploadBytes caps catalog image uploads before decoding.
const maxUploadBytes = 10 << 20

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	db       *gorm.DB
	uploader *blob.Uploader
	audit    *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, uploader *blob.Uploader, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, uploader: uploader, audit: auditDispatcher}
}

// ======================================================
// SERVICES
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("title asc").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	var styles []models.Style
	if err := h.db.
		Where("barbershop_id = ?", barbershopID).
		Order("name asc").
		Find(&styles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_styles", "Could not load styles.")
		return
	}

	stylesByService := make(map[string][]models.Style, len(services))
	for _, s := range styles {
		stylesByService[s.ServiceID] = append(stylesByService[s.ServiceID], s)
	}

	type serviceWithStyles struct {
		models.Service
		Styles []models.Style `json:"styles"`
	}

	out := make([]serviceWithStyles, 0, len(services))
	for _, s := range services {
		st := stylesByService[s.ID]
		if st == nil {
			st = []models.Style{}
		}
		out = append(out, serviceWithStyles{Service: s, Styles: st})
	}

	c.JSON(http.StatusOK, gin.H{"services": out, "total": len(out)})
}

// Create takes a multipart form: title plus a required image, which is
// re-encoded as WebP before it goes to the bucket. Validation runs before
// anything is stored.
func (h *ServiceHandler) Create(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		httperr.BadRequest(c, "empty_title", "Service title cannot be empty.")
		return
	}

	imageData, err := h.readImageForm(c, true)
	if err != nil {
		return // response already written
	}

	imageURL, err := h.storeImage(c, barbershopID, "services", imageData)
	if err != nil {
		return
	}

	service := models.Service{
		BarbershopID:  barbershopID,
		Title:         title,
		FeaturedImage: imageURL,
		Status:        models.ServiceAvailable,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Could not create service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "service_created",
		Entity:       "service",
		EntityID:     &service.ID,
		Metadata:     gin.H{"title": service.Title},
	})

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	if title := strings.TrimSpace(c.PostForm("title")); title != "" {
		service.Title = title
	}

	if status := c.PostForm("status"); status != "" {
		if status != models.ServiceAvailable && status != models.ServiceDisabled {
			httperr.BadRequest(c, "invalid_status", "Status must be Available or Disabled.")
			return
		}
		service.Status = status
	}

	imageData, err := h.readImageForm(c, false)
	if err != nil {
		return
	}
	if imageData != nil {
		imageURL, err := h.storeImage(c, barbershopID, "services", imageData)
		if err != nil {
			return
		}
		service.FeaturedImage = imageURL
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Could not save service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "service_updated",
		Entity:       "service",
		EntityID:     &service.ID,
	})

	httpresp.OK(c, service)
}

// Delete removes the service and its styles in one transaction.
func (h *ServiceHandler) Delete(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	err := h.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("id = ? AND barbershop_id = ?", id, barbershopID).
			Delete(&models.Service{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.
			Where("service_id = ? AND barbershop_id = ?", id, barbershopID).
			Delete(&models.Style{}).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_delete_service", "Could not delete service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "service_deleted",
		Entity:       "service",
		EntityID:     &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ======================================================
// STYLES
// ======================================================

func (h *ServiceHandler) CreateStyle(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	serviceID := c.Param("id")

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", serviceID, barbershopID).
		First(&service).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Could not load service.")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		httperr.BadRequest(c, "empty_name", "Style name cannot be empty.")
		return
	}

	imageData, err := h.readImageForm(c, true)
	if err != nil {
		return
	}

	imageURL, err := h.storeImage(c, barbershopID, "styles", imageData)
	if err != nil {
		return
	}

	style := models.Style{
		BarbershopID:  barbershopID,
		ServiceID:     service.ID,
		Name:          name,
		Price:         strings.TrimSpace(c.PostForm("price")),
		FeaturedImage: imageURL,
	}

	if err := h.db.Create(&style).Error; err != nil {
		httperr.Internal(c, "failed_to_create_style", "Could not create style.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "style_created",
		Entity:       "style",
		EntityID:     &style.ID,
		Metadata:     gin.H{"name": style.Name, "service_id": service.ID},
	})

	httpresp.Created(c, style)
}

func (h *ServiceHandler) UpdateStyle(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("styleId")

	var style models.Style
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&style).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "style_not_found", "Style not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_style", "Could not load style.")
		return
	}

	if name := strings.TrimSpace(c.PostForm("name")); name != "" {
		style.Name = name
	}
	if price, ok := c.GetPostForm("price"); ok {
		style.Price = strings.TrimSpace(price)
	}

	imageData, err := h.readImageForm(c, false)
	if err != nil {
		return
	}
	if imageData != nil {
		imageURL, err := h.storeImage(c, barbershopID, "styles", imageData)
		if err != nil {
			return
		}
		style.FeaturedImage = imageURL
	}

	if err := h.db.Save(&style).Error; err != nil {
		httperr.Internal(c, "failed_to_update_style", "Could not save style.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "style_updated",
		Entity:       "style",
		EntityID:     &style.ID,
	})

	httpresp.OK(c, style)
}

func (h *ServiceHandler) DeleteStyle(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("styleId")

	result := h.db.
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		Delete(&models.Style{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_style", "Could not delete style.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "style_not_found", "Style not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "style_deleted",
		Entity:       "style",
		EntityID:     &id,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ======================================================
// IMAGE HELPERS
// ======================================================

// readImageForm pulls the "image" file from the multipart form. When the
// field is absent and required is false it returns (nil, nil). On any
// error the HTTP response has already been written.
func (h *ServiceHandler) readImageForm(c *gin.Context, required bool) ([]byte, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if !required {
			return nil, nil
		}
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return nil, err
	}

	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be under 10 MB.")
		return nil, fmt.Errorf("image too large: %d bytes", file.Size)
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read uploaded image.")
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read uploaded image.")
		return nil, err
	}

	return data, nil
}

// storeImage re-encodes to WebP and uploads under a per-shop key. On error
// the HTTP response has already been written.
func (h *ServiceHandler) storeImage(c *gin.Context, barbershopID, kind string, data []byte) (string, error) {
	encoded, err := blob.EncodeWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The uploaded file is not a valid image.")
		return "", err
	}

	key := fmt.Sprintf("%s/%s/%d.webp", barbershopID, kind, time.Now().UnixNano())

	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return "", err
	}

	return url, nil
}
