package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/payout"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type PayoutGormRepository struct {
	db *gorm.DB
}

func NewPayoutGormRepository(db *gorm.DB) *PayoutGormRepository {
	return &PayoutGormRepository{db: db}
}

func (r *PayoutGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PayoutGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.BarberPayment, error) {

	var out []models.BarberPayment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PayoutGormRepository) Create(
	ctx context.Context,
	p *models.BarberPayment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Compile-time check
var _ payout.Repository = (*PayoutGormRepository)(nil)
