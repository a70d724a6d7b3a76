package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Phone        string  `gorm:"size:20" json:"phone"`
	Role         string  `gorm:"size:20;index;default:'customer'" json:"role"`
	Avatar       *string `gorm:"size:512" json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
