package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-marketplace/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availability *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{db: db, availability: availability}
}

type BarberCard struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

// GET /api/barbers
func (h *PublicHandler) ListBarbers(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.User{}).
		Where("LOWER(role) = ?", account.RoleBarber.String())

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		respondError(c, err, "failed_to_list_barbers", "Failed to list barbers")
		return
	}

	out := make([]BarberCard, 0, len(users))
	for _, u := range users {
		out = append(out, BarberCard{ID: u.ID, Name: u.Name, Avatar: u.Avatar})
	}

	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

// GET /api/barbers/:id/services
func (h *PublicHandler) ListServices(c *gin.Context) {
	barberID, ok := parseIDParam(c)
	if !ok {
		return
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("barber_id = ? AND active = ?", barberID, true)

	if category := strings.ToLower(strings.TrimSpace(c.Query("category"))); category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		respondError(c, err, "failed_to_list_services", "Failed to list services")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

// GET /api/barbers/:id/availability?date=YYYY-MM-DD
func (h *PublicHandler) Availability(c *gin.Context) {
	barberID, ok := parseIDParam(c)
	if !ok {
		return
	}

	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter 'date' is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		respondError(c, err, "availability_failed", "Failed to fetch availability")
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}
