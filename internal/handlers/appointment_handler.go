package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/barber-marketplace/internal/middleware"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	ucAppointment "github.com/BruksfildServices01/barber-marketplace/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateBooking
	listBarber   *ucAppointment.ListBarberAppointments
	listCustomer *ucAppointment.ListCustomerAppointments
	accept       *ucAppointment.AcceptAppointment
	decline      *ucAppointment.DeclineAppointment
	complete     *ucAppointment.CompleteAppointment
	cancel       *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateBooking,
	listBarber *ucAppointment.ListBarberAppointments,
	listCustomer *ucAppointment.ListCustomerAppointments,
	accept *ucAppointment.AcceptAppointment,
	decline *ucAppointment.DeclineAppointment,
	complete *ucAppointment.CompleteAppointment,
	cancel *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		listBarber:   listBarber,
		listCustomer: listCustomer,
		accept:       accept,
		decline:      decline,
		complete:     complete,
		cancel:       cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingItemRequest struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type CreateAppointmentRequest struct {
	BarberID uint                 `json:"barberId" binding:"required"`
	Date     string               `json:"date" binding:"required"`
	Time     string               `json:"time" binding:"required"`
	Notes    string               `json:"notes"`
	Items    []BookingItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ======================================================
// CUSTOMER
// ======================================================

// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "barberId, date, time and at least one item are required.")
		return
	}

	items := make([]ucAppointment.BookingItem, 0, len(req.Items))
	for _, it := range req.Items {
		q := it.Quantity
		if q == 0 {
			q = 1
		}
		items = append(items, ucAppointment.BookingItem{ServiceID: it.ServiceID, Quantity: q})
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		CustomerID: middleware.CurrentIdentity(c).UserID,
		BarberID:   req.BarberID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		respondError(c, err, "failed_to_create_appointment", "Failed to create appointment")
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap))
}

// GET /api/me/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	out, err := h.listCustomer.Execute(c.Request.Context(), middleware.CurrentIdentity(c).UserID)
	if err != nil {
		respondError(c, err, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	httpresp.List(c, out)
}

// PATCH /api/me/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), middleware.CurrentIdentity(c).UserID, id)
	h.respondTransition(c, ap, err)
}

// ======================================================
// BARBER
// ======================================================

// GET /api/barber/appointments?status=
func (h *AppointmentHandler) ListForBarber(c *gin.Context) {
	out, err := h.listBarber.Execute(
		c.Request.Context(),
		middleware.CurrentIdentity(c).UserID,
		c.Query("status"),
	)
	if err != nil {
		respondError(c, err, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	httpresp.List(c, out)
}

// PATCH /api/barber/appointments/:id/accept
func (h *AppointmentHandler) Accept(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.accept.Execute(c.Request.Context(), middleware.CurrentIdentity(c).UserID, id)
	h.respondTransition(c, ap, err)
}

// PATCH /api/barber/appointments/:id/decline
func (h *AppointmentHandler) Decline(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.decline.Execute(c.Request.Context(), middleware.CurrentIdentity(c).UserID, id)
	h.respondTransition(c, ap, err)
}

// PATCH /api/barber/appointments/:id/complete
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), middleware.CurrentIdentity(c).UserID, id)
	h.respondTransition(c, ap, err)
}

func (h *AppointmentHandler) respondTransition(c *gin.Context, ap *models.Appointment, err error) {
	if err != nil {
		respondError(c, err, "failed_to_update_appointment", "Failed to update appointment")
		return
	}

	httpresp.OK(c, dto.FromAppointment(*ap))
}
