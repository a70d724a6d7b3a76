package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/dto"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

type ListBarberAppointments struct {
	repo domain.Repository
}

func NewListBarberAppointments(repo domain.Repository) *ListBarberAppointments {
	return &ListBarberAppointments{repo: repo}
}

// Execute lists the barber's appointments, newest first. statusFilter is an
// optional comma-separated status list.
func (uc *ListBarberAppointments) Execute(
	ctx context.Context,
	barberID uint,
	statusFilter string,
) ([]dto.AppointmentListDTO, error) {

	var statuses []domain.Status
	for _, raw := range strings.Split(statusFilter, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		s := domain.ParseStatus(raw)
		if s == domain.StatusUnknown {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		statuses = append(statuses, s)
	}

	apps, err := uc.repo.ListForBarber(ctx, barberID, statuses)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(apps), nil
}

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(repo domain.Repository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {

	apps, err := uc.repo.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return dto.FromAppointments(apps), nil
}
