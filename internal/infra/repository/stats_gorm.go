package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/admin"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/payout"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

type roleCountRow struct {
	Role  string
	Count int64
}

func (r *StatsGormRepository) CountUsersByRole(ctx context.Context) (map[string]int64, error) {
	var rows []roleCountRow
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("LOWER(role) AS role, COUNT(*) AS count").
		Group("LOWER(role)").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Role] += row.Count
	}
	return out, nil
}

func (r *StatsGormRepository) CountAppointments(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *StatsGormRepository) PlatformRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row totalsRow
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where("LOWER(status) IN ?", appointment.Values(appointment.RevenueStatuses)).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}

func (r *StatsGormRepository) PlatformPayoutsMinor(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.BarberPayment{}).
		Select("CAST(COALESCE(SUM(amount), 0) AS BIGINT)").
		Where("LOWER(status) = ?", string(payout.StatusSuccess)).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Compile-time check
var _ admin.Repository = (*StatsGormRepository)(nil)
