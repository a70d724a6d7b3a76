package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

// CancelAppointment is the customer side: only the customer who booked can
// cancel, and only while the appointment is pending or confirmed.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	customerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCustomer(ctx, appointmentID, customerID)
	if err != nil {
		return nil, notFound(err)
	}

	if err := domain.Cancel(ap, uc.clock()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: ap.BarberID,
		UserID:   &customerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
