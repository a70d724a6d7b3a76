package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Services --------
	ListActiveServices(
		ctx context.Context,
		barberID uint,
		ids []uint,
	) ([]models.Service, error)

	// -------- Booking --------
	// CreateBooking inserts ap with its items and fails with the
	// "slot_taken" business error when a live appointment holds the slot.
	CreateBooking(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		day time.Time,
	) ([]string, error)

	// -------- State change --------
	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	GetAppointmentForCustomer(
		ctx context.Context,
		appointmentID uint,
		customerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListForBarber(
		ctx context.Context,
		barberID uint,
		statuses []Status,
	) ([]models.Appointment, error)

	ListForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)
}
