package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

// barberAction loads an appointment owned by the barber, applies a domain
// transition, persists it and records the audit event.
type barberAction struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	clock  timezone.Clock
	action string
	apply  func(ap *models.Appointment, now time.Time) error
}

func (a *barberAction) run(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := a.repo.GetAppointmentForBarber(ctx, appointmentID, barberID)
	if err != nil {
		return nil, notFound(err)
	}

	if err := a.apply(ap, a.clock()); err != nil {
		return nil, err
	}

	if err := a.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	a.audit.Dispatch(audit.Event{
		BarberID: barberID,
		UserID:   &barberID,
		Action:   a.action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	return ap, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return err
}

// ======================================================
// ACCEPT
// ======================================================

type AcceptAppointment struct{ barberAction }

func NewAcceptAppointment(repo domain.Repository, audit *audit.Dispatcher, clock timezone.Clock) *AcceptAppointment {
	return &AcceptAppointment{barberAction{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		action: "appointment_confirmed",
		apply: func(ap *models.Appointment, _ time.Time) error {
			return domain.Accept(ap)
		},
	}}
}

func (uc *AcceptAppointment) Execute(ctx context.Context, barberID, appointmentID uint) (*models.Appointment, error) {
	return uc.run(ctx, barberID, appointmentID)
}

// ======================================================
// DECLINE
// ======================================================

type DeclineAppointment struct{ barberAction }

func NewDeclineAppointment(repo domain.Repository, audit *audit.Dispatcher, clock timezone.Clock) *DeclineAppointment {
	return &DeclineAppointment{barberAction{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		action: "appointment_rejected",
		apply:  domain.Decline,
	}}
}

func (uc *DeclineAppointment) Execute(ctx context.Context, barberID, appointmentID uint) (*models.Appointment, error) {
	return uc.run(ctx, barberID, appointmentID)
}
