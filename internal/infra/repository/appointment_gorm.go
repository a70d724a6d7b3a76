package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

const dateLayout = "2006-01-02"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveServices(
	ctx context.Context,
	barberID uint,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND active = ? AND id IN ?", barberID, true, ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateBooking(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var held []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where(
				"barber_id = ? AND appointment_date = ? AND appointment_time = ? AND LOWER(status) IN ?",
				ap.BarberID,
				ap.Date.Format(dateLayout),
				ap.Time,
				domain.Values(domain.TransactionStatuses),
			).
			Limit(1).
			Find(&held).Error; err != nil {
			return err
		}

		if len(held) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Omit("Barber", "Customer").Create(ap).Error
	})

	// The partial unique index catches races the row lock cannot see.
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

func (r *AppointmentGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID uint,
	day time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND appointment_date = ? AND LOWER(status) IN ?",
			barberID,
			day.Format(dateLayout),
			domain.Values(domain.TransactionStatuses),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForCustomer(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", appointmentID, customerID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Select("status", "cancelled_at", "completed_at").
		Updates(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForBarber(
	ctx context.Context,
	barberID uint,
	statuses []domain.Status,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items.Service").
		Where("barber_id = ?", barberID)

	if len(statuses) > 0 {
		q = q.Where("LOWER(status) IN ?", domain.Values(statuses))
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Items.Service").
		Where("customer_id = ?", customerID).
		Order("appointment_date DESC").
		Order("appointment_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
