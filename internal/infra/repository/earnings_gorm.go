package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/earnings"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/payout"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// EarningsGormRepository is read-only; statuses are case-folded in SQL and
// again when rows are mapped.
type EarningsGormRepository struct {
	db *gorm.DB
}

func NewEarningsGormRepository(db *gorm.DB) *EarningsGormRepository {
	return &EarningsGormRepository{db: db}
}

type totalsRow struct {
	Total decimal.NullDecimal
	Count int64
}

func (r *EarningsGormRepository) RevenueTotals(
	ctx context.Context,
	barberID uint,
	window *earnings.DateRange,
) (earnings.Totals, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where(
			"barber_id = ? AND LOWER(status) IN ?",
			barberID,
			appointment.Values(appointment.RevenueStatuses),
		)

	if window != nil {
		q = q.Where(
			"appointment_date >= ? AND appointment_date <= ?",
			window.FirstDay(),
			window.LastDay(),
		)
	}

	var row totalsRow
	if err := q.Scan(&row).Error; err != nil {
		return earnings.Totals{}, err
	}

	sum := decimal.Zero
	if row.Total.Valid {
		sum = row.Total.Decimal
	}
	return earnings.Totals{Sum: sum, Count: row.Count}, nil
}

func (r *EarningsGormRepository) SuccessfulPayoutsMinor(
	ctx context.Context,
	barberID uint,
) (int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.BarberPayment{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
		Where("barber_id = ? AND LOWER(status) = ?", barberID, string(payout.StatusSuccess)).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

type dailyRow struct {
	AppointmentDate time.Time
	Status          string
	TotalAmount     decimal.NullDecimal
}

func (r *EarningsGormRepository) DailyRevenue(
	ctx context.Context,
	barberID uint,
	window earnings.DateRange,
) ([]earnings.DailyRevenue, error) {

	var rows []dailyRow
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointment_date, status, total_amount").
		Where(
			"barber_id = ? AND LOWER(status) IN ? AND appointment_date >= ? AND appointment_date <= ?",
			barberID,
			appointment.Values(appointment.RevenueStatuses),
			window.FirstDay(),
			window.LastDay(),
		).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]earnings.DailyRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, earnings.DailyRevenue{
			Date:   row.AppointmentDate,
			Status: appointment.ParseStatus(row.Status),
			Amount: row.TotalAmount,
		})
	}
	return out, nil
}

func (r *EarningsGormRepository) RecentTransactions(
	ctx context.Context,
	barberID uint,
	limit int,
) ([]earnings.TransactionRecord, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Service").
		Where(
			"barber_id = ? AND LOWER(status) IN ?",
			barberID,
			appointment.Values(appointment.TransactionStatuses),
		).
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	out := make([]earnings.TransactionRecord, 0, len(apps))
	for _, ap := range apps {
		names := make([]string, 0, len(ap.Items))
		for _, it := range ap.Items {
			names = append(names, it.Service.Name)
		}

		out = append(out, earnings.TransactionRecord{
			ID:             ap.ID,
			Date:           ap.Date,
			Time:           ap.Time,
			Status:         appointment.ParseStatus(ap.Status),
			Amount:         ap.TotalAmount,
			CustomerName:   ap.Customer.Name,
			CustomerAvatar: ap.Customer.Avatar,
			ServiceNames:   names,
		})
	}
	return out, nil
}

// Compile-time check
var _ earnings.Repository = (*EarningsGormRepository)(nil)
