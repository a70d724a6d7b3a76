package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

type CompleteAppointment struct{ barberAction }

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CompleteAppointment {
	return &CompleteAppointment{barberAction{
		repo:   repo,
		audit:  audit,
		clock:  clock,
		action: "appointment_completed",
		apply:  domain.Complete,
	}}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	barberID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.run(ctx, barberID, appointmentID)
}
