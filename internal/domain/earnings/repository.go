package earnings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
)

// TransactionLimit caps the transaction list of a summary.
const TransactionLimit = 50

// Totals is a revenue sum and the number of appointments behind it.
type Totals struct {
	Sum   decimal.Decimal
	Count int64
}

type DailyRevenue struct {
	Date   time.Time
	Status appointment.Status
	Amount decimal.NullDecimal
}

type TransactionRecord struct {
	ID             uint
	Date           time.Time
	Time           string
	Status         appointment.Status
	Amount         decimal.NullDecimal
	CustomerName   string
	CustomerAvatar *string
	ServiceNames   []string
}

// Repository is the read side the earnings summary is computed from.
// Every method is independent of the others.
type Repository interface {
	// RevenueTotals sums revenue-status appointments, optionally restricted
	// to window (nil means all time).
	RevenueTotals(ctx context.Context, barberID uint, window *DateRange) (Totals, error)

	// SuccessfulPayoutsMinor sums successful payouts in minor units.
	SuccessfulPayoutsMinor(ctx context.Context, barberID uint) (int64, error)

	// DailyRevenue lists revenue-status appointments dated inside window.
	DailyRevenue(ctx context.Context, barberID uint, window DateRange) ([]DailyRevenue, error)

	// RecentTransactions lists transaction-status appointments, newest
	// date then newest time first, at most limit rows.
	RecentTransactions(ctx context.Context, barberID uint, limit int) ([]TransactionRecord, error)
}
