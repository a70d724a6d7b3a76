package models

import "time"

// AuditLog is one row of a barber's activity trail. Metadata holds the
// event payload as JSON text.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint  `gorm:"index:idx_audit_barber_created,priority:1;not null" json:"barber_id"`
	UserID   *uint `gorm:"index" json:"user_id"`

	Action   string `gorm:"size:50;index;not null" json:"action"`
	Entity   string `gorm:"size:50;index" json:"entity"`
	EntityID *uint  `json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index:idx_audit_barber_created,priority:2" json:"created_at"`
}
