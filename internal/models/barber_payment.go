package models

import "time"

// BarberPayment is a payout to a barber. Amount is in minor units (paise).
type BarberPayment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index;not null" json:"barber_id"`

	Amount    *int64 `json:"amount"`
	Status    string `gorm:"size:20;index" json:"status"`
	Reference string `gorm:"size:100" json:"reference"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
