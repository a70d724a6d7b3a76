package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is something a barber sells (haircut, beard trim, ...).
type Service struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index;not null" json:"barber_id"`

	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	DurationMin int             `json:"duration_min"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string          `gorm:"size:50" json:"category"`
	Active      bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
