package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"index;not null" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CustomerID uint `gorm:"index;not null" json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// Date is a calendar day; Time is the slot start as "HH:MM".
	Date time.Time `gorm:"column:appointment_date;type:date;index;not null" json:"date"`
	Time string    `gorm:"column:appointment_time;size:5;not null" json:"time"`

	Status      string              `gorm:"size:20;index;default:'pending'" json:"status"`
	TotalAmount decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Notes       string              `gorm:"size:255" json:"notes"`

	Items []AppointmentItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentItem struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Price    decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity int                 `gorm:"default:1" json:"quantity"`
}
