package payout

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusPending Status = "pending"
	StatusFailed  Status = "failed"
)

// ParseStatus case-folds raw; ok is false for anything outside the enum.
func ParseStatus(raw string) (Status, bool) {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusSuccess, StatusPending, StatusFailed:
		return s, true
	default:
		return "", false
	}
}

type Repository interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListForBarber(ctx context.Context, barberID uint) ([]models.BarberPayment, error)
	Create(ctx context.Context, p *models.BarberPayment) error
}

// View is a payout as shown to API clients, in major units.
type View struct {
	ID        uint      `json:"id"`
	Amount    float64   `json:"amount"`
	Status    Status    `json:"status"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"createdAt"`
}
