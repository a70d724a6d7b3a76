package admin

import (
	"context"

	"github.com/shopspring/decimal"
)

type PlatformStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalBarbers      int64   `json:"totalBarbers"`
	TotalCustomers    int64   `json:"totalCustomers"`
	TotalAppointments int64   `json:"totalAppointments"`
	CompletedRevenue  float64 `json:"completedRevenue"`
	TotalPayouts      float64 `json:"totalPayouts"`
}

// Repository reads platform-wide figures. Methods are independent.
type Repository interface {
	CountUsersByRole(ctx context.Context) (map[string]int64, error)
	CountAppointments(ctx context.Context) (int64, error)
	PlatformRevenue(ctx context.Context) (decimal.Decimal, error)
	PlatformPayoutsMinor(ctx context.Context) (int64, error)
}
