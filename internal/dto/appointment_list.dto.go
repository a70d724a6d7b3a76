package dto

import (
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/earnings"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type AppointmentListDTO struct {
	ID           uint               `json:"id"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	Status       appointment.Status `json:"status"`
	TotalAmount  float64            `json:"totalAmount"`
	CustomerName string             `json:"customerName,omitempty"`
	BarberName   string             `json:"barberName,omitempty"`
	Services     []string           `json:"services"`
	Notes        string             `json:"notes,omitempty"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	services := make([]string, 0, len(ap.Items))
	for _, it := range ap.Items {
		if it.Service.Name != "" {
			services = append(services, it.Service.Name)
		}
	}

	var total float64
	if ap.TotalAmount.Valid {
		total = earnings.Round2(ap.TotalAmount.Decimal)
	}

	return AppointmentListDTO{
		ID:           ap.ID,
		Date:         ap.Date.Format("2006-01-02"),
		Time:         ap.Time,
		Status:       appointment.ParseStatus(ap.Status),
		TotalAmount:  total,
		CustomerName: ap.Customer.Name,
		BarberName:   ap.Barber.Name,
		Services:     services,
		Notes:        ap.Notes,
	}
}

func FromAppointments(apps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
