package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// liveSlotIndex backs the double-booking check in the booking transaction.
// Declined and cancelled rows drop out of it so the slot can be rebooked.
const liveSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_live_slot
	ON appointments (barber_id, appointment_date, appointment_time)
	WHERE LOWER(status) IN ('pending', 'confirmed', 'completed', 'paid')
`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc:     func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentItem{},
		&models.BarberPayment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := db.Exec(liveSlotIndex).Error; err != nil {
		return fmt.Errorf("create live slot index: %w", err)
	}

	return nil
}
