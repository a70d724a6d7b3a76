package earnings

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const placeholder = "—"

type Transaction struct {
	ID             uint    `json:"id"`
	Date           string  `json:"date"`
	CustomerName   string  `json:"customerName"`
	CustomerAvatar *string `json:"customerAvatar"`
	Services       string  `json:"services"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
}

type Summary struct {
	AvailableBalance     float64       `json:"availableBalance"`
	TotalEarnedThisMonth float64       `json:"totalEarnedThisMonth"`
	MonthName            string        `json:"monthName"`
	ProjectedEndOfMonth  float64       `json:"projectedEndOfMonth"`
	AvgPerService        float64       `json:"avgPerService"`
	WeeklyPerformance    []float64     `json:"weeklyPerformance"`
	Transactions         []Transaction `json:"transactions"`
	TotalTransactions    int           `json:"totalTransactions"`
}

// Snapshot holds the raw reads a summary is derived from.
type Snapshot struct {
	AllTime      Totals
	Month        Totals
	PayoutsMinor int64
	Week         []DailyRevenue
	Recent       []TransactionRecord
}

// Summarize derives the dashboard payload from snap. now is the single clock
// reading for the whole request; every window comes from it.
func Summarize(now time.Time, snap Snapshot) Summary {
	balance := snap.AllTime.Sum.Sub(MinorToMajor(snap.PayoutsMinor))
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	avg := decimal.Zero
	if snap.AllTime.Count > 0 {
		avg = snap.AllTime.Sum.Div(decimal.NewFromInt(snap.AllTime.Count))
	}

	transactions := buildTransactions(snap.Recent)

	return Summary{
		AvailableBalance:     Round2(balance),
		TotalEarnedThisMonth: Round2(snap.Month.Sum),
		MonthName:            now.Month().String()[:3],
		ProjectedEndOfMonth:  Round2(Project(now, snap.Month.Sum)),
		AvgPerService:        Round2(avg),
		WeeklyPerformance:    weekly(now, snap.Week),
		Transactions:         transactions,
		TotalTransactions:    len(transactions),
	}
}

// Project extrapolates month-to-date earnings linearly to month end.
func Project(now time.Time, monthToDate decimal.Decimal) decimal.Decimal {
	day := now.Day()

	elapsed := day
	if elapsed < 1 {
		elapsed = 1
	}

	remaining := DaysInMonth(now) - day
	if remaining < 0 {
		remaining = 0
	}

	perDay := monthToDate.Div(decimal.NewFromInt(int64(elapsed)))
	return monthToDate.Add(perDay.Mul(decimal.NewFromInt(int64(remaining))))
}

func weekly(now time.Time, rows []DailyRevenue) []float64 {
	window := WeekWindow(now)

	var buckets [7]decimal.Decimal
	for _, r := range rows {
		if !r.Status.IsRevenue() || !window.Contains(r.Date) {
			continue
		}
		i := weekIndex(r.Date)
		buckets[i] = buckets[i].Add(orZero(r.Amount))
	}

	out := make([]float64, 7)
	for i, b := range buckets {
		out[i] = Round2(b)
	}
	return out
}

func buildTransactions(records []TransactionRecord) []Transaction {
	live := make([]TransactionRecord, 0, len(records))
	for _, r := range records {
		if r.Status.IsLive() {
			live = append(live, r)
		}
	}

	sort.SliceStable(live, func(i, j int) bool {
		a, b := dayKey(live[i].Date), dayKey(live[j].Date)
		if a != b {
			return a > b
		}
		return live[i].Time > live[j].Time
	})

	if len(live) > TransactionLimit {
		live = live[:TransactionLimit]
	}

	out := make([]Transaction, 0, len(live))
	for _, r := range live {
		out = append(out, Transaction{
			ID:             r.ID,
			Date:           r.Date.Format("Jan 2, 2006"),
			CustomerName:   nonEmpty(r.CustomerName),
			CustomerAvatar: avatar(r.CustomerAvatar),
			Services:       joinServices(r.ServiceNames),
			Amount:         Round2(orZero(r.Amount)),
			Status:         r.Status.Upper(),
		})
	}
	return out
}

func joinServices(names []string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	if len(kept) == 0 {
		return placeholder
	}
	return strings.Join(kept, ", ")
}

func nonEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func avatar(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	return ref
}
