package payout

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/earnings"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/payout"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ======================================================
// LIST (barber)
// ======================================================

type ListPayouts struct {
	repo domain.Repository
}

func NewListPayouts(repo domain.Repository) *ListPayouts {
	return &ListPayouts{repo: repo}
}

func (uc *ListPayouts) Execute(
	ctx context.Context,
	barberID uint,
) ([]domain.View, error) {

	rows, err := uc.repo.ListForBarber(ctx, barberID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.View, 0, len(rows))
	for _, p := range rows {
		out = append(out, toView(p))
	}
	return out, nil
}

// ======================================================
// RECORD (admin)
// ======================================================

type RecordPayoutInput struct {
	BarberID  uint
	Amount    decimal.Decimal
	Status    string
	Reference string
}

type RecordPayout struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordPayout(repo domain.Repository, audit *audit.Dispatcher) *RecordPayout {
	return &RecordPayout{repo: repo, audit: audit}
}

func (uc *RecordPayout) Execute(
	ctx context.Context,
	caller account.Identity,
	in RecordPayoutInput,
) (*domain.View, error) {

	status, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_status")
	}
	minor := earnings.MajorToMinor(in.Amount)
	if minor <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if role, _ := account.ParseRole(barber.Role); role != account.RoleBarber {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	p := &models.BarberPayment{
		BarberID:  barber.ID,
		Amount:    &minor,
		Status:    string(status),
		Reference: strings.TrimSpace(in.Reference),
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barber.ID,
		UserID:   &caller.UserID,
		Action:   "payout_recorded",
		Entity:   "barber_payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"amount_minor": minor, "status": status},
	})

	v := toView(*p)
	return &v, nil
}

func toView(p models.BarberPayment) domain.View {
	var minor int64
	if p.Amount != nil {
		minor = *p.Amount
	}

	status, _ := domain.ParseStatus(p.Status)

	return domain.View{
		ID:        p.ID,
		Amount:    earnings.Round2(earnings.MinorToMajor(minor)),
		Status:    status,
		Reference: p.Reference,
		CreatedAt: p.CreatedAt,
	}
}
