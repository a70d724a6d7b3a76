package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DurationMin int             `json:"durationMin" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	DurationMin *int             `json:"durationMin,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

// GET /api/barber/services
func (h *ServiceHandler) List(c *gin.Context) {
	barberID := middleware.CurrentIdentity(c).UserID

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.WithContext(c.Request.Context()).Where("barber_id = ?", barberID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	switch activeStr {
	case "true":
		q = q.Where("active = ?", true)
	case "false":
		q = q.Where("active = ?", false)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		respondError(c, err, "failed_to_list_services", "Failed to list services")
		return
	}

	httpresp.List(c, services)
}

// POST /api/barber/services
func (h *ServiceHandler) Create(c *gin.Context) {
	barberID := middleware.CurrentIdentity(c).UserID

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and a positive duration are required.")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}

	service := models.Service{
		BarberID:    barberID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price.Round(2),
		Category:    strings.ToLower(strings.TrimSpace(req.Category)),
		Active:      true,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&service).Error; err != nil {
		respondError(c, err, "failed_to_create_service", "Failed to create service")
		return
	}

	httpresp.Created(c, service)
}

// PATCH /api/barber/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	barberID := middleware.CurrentIdentity(c).UserID

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Service not found.")
			return
		}
		respondError(c, err, "failed_to_get_service", "Failed to load service")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.DurationMin != nil {
		if *req.DurationMin < 1 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
			return
		}
		service.Price = req.Price.Round(2)
	}
	if req.Category != nil {
		service.Category = strings.ToLower(strings.TrimSpace(*req.Category))
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&service).Error; err != nil {
		respondError(c, err, "failed_to_update_service", "Failed to update service")
		return
	}

	httpresp.OK(c, service)
}
