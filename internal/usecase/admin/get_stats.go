package admin

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/admin"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/earnings"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

type GetPlatformStats struct {
	repo domain.Repository
}

func NewGetPlatformStats(repo domain.Repository) *GetPlatformStats {
	return &GetPlatformStats{repo: repo}
}

func (uc *GetPlatformStats) Execute(
	ctx context.Context,
	caller account.Identity,
) (*domain.PlatformStats, error) {

	if !caller.Authenticated() {
		return nil, httperr.ErrBusiness("unauthorized")
	}
	if caller.Role != account.RoleAdmin {
		return nil, httperr.ErrBusiness("not_an_admin")
	}

	var (
		byRole   map[string]int64
		apps     int64
		revenue  decimal.Decimal
		payments int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		byRole, err = uc.repo.CountUsersByRole(gctx)
		return wrap("users", err)
	})
	g.Go(func() (err error) {
		apps, err = uc.repo.CountAppointments(gctx)
		return wrap("appointments", err)
	})
	g.Go(func() (err error) {
		revenue, err = uc.repo.PlatformRevenue(gctx)
		return wrap("revenue", err)
	})
	g.Go(func() (err error) {
		payments, err = uc.repo.PlatformPayoutsMinor(gctx)
		return wrap("payouts", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var users int64
	for _, n := range byRole {
		users += n
	}

	return &domain.PlatformStats{
		TotalUsers:        users,
		TotalBarbers:      byRole[string(account.RoleBarber)],
		TotalCustomers:    byRole[string(account.RoleCustomer)],
		TotalAppointments: apps,
		CompletedRevenue:  earnings.Round2(revenue),
		TotalPayouts:      earnings.Round2(earnings.MinorToMajor(payments)),
	}, nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", what, err)
}
