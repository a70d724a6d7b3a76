package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	clock timezone.Clock
	loc   *time.Location
}

func NewGetAvailability(repo domain.Repository, clock timezone.Clock, loc *time.Location) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clock, loc: loc}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]domain.SlotAvailability, error) {

	day, err := time.ParseInLocation("2006-01-02", date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if domain.IsBeforeDay(day, uc.clock().In(uc.loc)) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	barber, err := uc.repo.GetUser(ctx, barberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if role, _ := account.ParseRole(barber.Role); role != account.RoleBarber {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	booked, err := uc.repo.ListBookedTimes(ctx, barberID, day)
	if err != nil {
		return nil, err
	}

	return domain.BuildAvailability(booked), nil
}
