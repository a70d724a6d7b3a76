package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
	"github.com/BruksfildServices01/barber-marketplace/internal/timezone"
)

const maxQuantity = 10

// ======================================================
// INPUT
// ======================================================

type BookingItem struct {
	ServiceID uint
	Quantity  int
}

type CreateBookingInput struct {
	CustomerID uint
	BarberID   uint
	Date       string
	Time       string
	Notes      string
	Items      []BookingItem
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	clock timezone.Clock
	loc   *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{repo: repo, audit: audit, clock: clock, loc: loc}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Date / slot
	// --------------------------------------------------
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(in.Date), uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot := strings.TrimSpace(in.Time)
	if !domain.IsValidSlot(slot) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	now := uc.clock().In(uc.loc)
	if domain.IsBeforeDay(day, now) {
		return nil, httperr.ErrBusiness("date_in_past")
	}
	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("no_services")
	}

	// --------------------------------------------------
	// Barber
	// --------------------------------------------------
	barber, err := uc.repo.GetUser(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if role, _ := account.ParseRole(barber.Role); role != account.RoleBarber {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// Services (priced now, frozen on the item)
	// --------------------------------------------------
	qty := make(map[uint]int, len(in.Items))
	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 || it.Quantity > maxQuantity {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}
		if _, seen := qty[it.ServiceID]; !seen {
			ids = append(ids, it.ServiceID)
		}
		qty[it.ServiceID] += it.Quantity
	}

	services, err := uc.repo.ListActiveServices(ctx, barber.ID, ids)
	if err != nil {
		return nil, err
	}
	if len(services) != len(ids) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	total := decimal.Zero
	items := make([]models.AppointmentItem, 0, len(services))
	for _, s := range services {
		q := qty[s.ID]
		total = total.Add(s.Price.Mul(decimal.NewFromInt(int64(q))))
		items = append(items, models.AppointmentItem{
			ServiceID: s.ID,
			Price:     decimal.NewNullDecimal(s.Price),
			Quantity:  q,
		})
	}

	// --------------------------------------------------
	// Create (slot conflict resolved by the repository)
	// --------------------------------------------------
	ap := &models.Appointment{
		BarberID:    barber.ID,
		CustomerID:  in.CustomerID,
		Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Time:        slot,
		Status:      string(domain.InitialStatus()),
		TotalAmount: decimal.NewNullDecimal(total),
		Notes:       strings.TrimSpace(in.Notes),
		Items:       items,
	}

	if err := uc.repo.CreateBooking(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarberID: barber.ID,
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"date": in.Date, "time": slot},
	})

	return ap, nil
}
