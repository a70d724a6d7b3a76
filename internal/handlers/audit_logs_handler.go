package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

type AuditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// GET /api/barber/audit-logs
func (h *AuditLogsHandler) List(c *gin.Context) {
	barberID := middleware.CurrentIdentity(c).UserID

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Base query, always scoped to the barber
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.AuditLog{}).
		Where("barber_id = ?", barberID)

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q = q.Where("created_at >= ?", from)
	}

	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		q = q.Where("created_at < ?", to.Add(24*time.Hour))
	}

	// --------------------------------------------------
	// Total + page
	// --------------------------------------------------

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		respondError(c, err, "audit_count_failed", "Failed to count audit logs")
		return
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		respondError(c, err, "audit_list_failed", "Failed to list audit logs")
		return
	}

	httpresp.OK(c, AuditPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
