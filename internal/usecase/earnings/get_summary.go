package earnings

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/earnings"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

type GetEarningsSummary struct {
	repo  domain.Repository
	clock timezone.Clock
	loc   *time.Location
}

func NewGetEarningsSummary(
	repo domain.Repository,
	clock timezone.Clock,
	loc *time.Location,
) *GetEarningsSummary {
	if clock == nil {
		clock = timezone.SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &GetEarningsSummary{repo: repo, clock: clock, loc: loc}
}

// Execute reads the five independent aggregates concurrently and derives the
// summary from a single clock reading. Any failed read fails the whole call.
func (uc *GetEarningsSummary) Execute(
	ctx context.Context,
	caller account.Identity,
) (*domain.Summary, error) {

	// --------------------------------------------------
	// Caller
	// --------------------------------------------------
	if !caller.Authenticated() {
		return nil, httperr.ErrBusiness("unauthorized")
	}
	if caller.Role != account.RoleBarber {
		return nil, httperr.ErrBusiness("not_a_barber")
	}

	now := uc.clock().In(uc.loc)
	month := domain.MonthWindow(now)
	week := domain.WeekWindow(now)
	barberID := caller.UserID

	// --------------------------------------------------
	// Reads
	// --------------------------------------------------
	var (
		allTime domain.Totals
		monthly domain.Totals
		payouts int64
		daily   []domain.DailyRevenue
		recent  []domain.TransactionRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := uc.repo.RevenueTotals(gctx, barberID, nil)
		if err != nil {
			return fmt.Errorf("all-time revenue: %w", err)
		}
		allTime = t
		return nil
	})

	g.Go(func() error {
		t, err := uc.repo.RevenueTotals(gctx, barberID, &month)
		if err != nil {
			return fmt.Errorf("month revenue: %w", err)
		}
		monthly = t
		return nil
	})

	g.Go(func() error {
		p, err := uc.repo.SuccessfulPayoutsMinor(gctx, barberID)
		if err != nil {
			return fmt.Errorf("payouts: %w", err)
		}
		payouts = p
		return nil
	})

	g.Go(func() error {
		d, err := uc.repo.DailyRevenue(gctx, barberID, week)
		if err != nil {
			return fmt.Errorf("weekly revenue: %w", err)
		}
		daily = d
		return nil
	})

	g.Go(func() error {
		r, err := uc.repo.RecentTransactions(gctx, barberID, domain.TransactionLimit)
		if err != nil {
			return fmt.Errorf("transactions: %w", err)
		}
		recent = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Derive
	// --------------------------------------------------
	summary := domain.Summarize(now, domain.Snapshot{
		AllTime:      allTime,
		Month:        monthly,
		PayoutsMinor: payouts,
		Week:         daily,
		Recent:       recent,
	})

	return &summary, nil
}
