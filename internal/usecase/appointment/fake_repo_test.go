package appointment

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-marketplace/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type fakeRepo struct {
	users    map[uint]models.User
	services []models.Service
	apps     map[uint]*models.Appointment
	nextID   uint
	updates  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: map[uint]models.User{
			3:  {ID: 3, Name: "Arjun", Role: "barber"},
			20: {ID: 20, Name: "Ravi", Role: "customer"},
		},
		services: []models.Service{
			{ID: 5, BarberID: 3, Name: "Haircut", Price: mustDec("250.00"), Active: true},
			{ID: 6, BarberID: 3, Name: "Beard Trim", Price: mustDec("100.50"), Active: true},
			{ID: 7, BarberID: 3, Name: "Retired", Price: mustDec("10"), Active: false},
			{ID: 8, BarberID: 4, Name: "Other Barber", Price: mustDec("10"), Active: true},
		},
		apps:   map[uint]*models.Appointment{},
		nextID: 100,
	}
}

func (f *fakeRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f *fakeRepo) ListActiveServices(_ context.Context, barberID uint, ids []uint) ([]models.Service, error) {
	want := map[uint]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []models.Service
	for _, s := range f.services {
		if s.BarberID == barberID && s.Active && want[s.ID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, ap *models.Appointment) error {
	for _, other := range f.apps {
		if other.BarberID == ap.BarberID &&
			other.Date.Equal(ap.Date) &&
			other.Time == ap.Time &&
			domain.ParseStatus(other.Status).IsLive() {
			return httperr.ErrBusiness("slot_taken")
		}
	}
	f.nextID++
	ap.ID = f.nextID
	cp := *ap
	f.apps[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListBookedTimes(_ context.Context, barberID uint, day time.Time) ([]string, error) {
	var out []string
	for _, ap := range f.apps {
		if ap.BarberID == barberID && ap.Date.Format("2006-01-02") == day.Format("2006-01-02") &&
			domain.ParseStatus(ap.Status).IsLive() {
			out = append(out, ap.Time)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeRepo) GetAppointmentForBarber(_ context.Context, id, barberID uint) (*models.Appointment, error) {
	ap, ok := f.apps[id]
	if !ok || ap.BarberID != barberID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetAppointmentForCustomer(_ context.Context, id, customerID uint) (*models.Appointment, error) {
	ap, ok := f.apps[id]
	if !ok || ap.CustomerID != customerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updates++
	cp := *ap
	f.apps[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListForBarber(_ context.Context, barberID uint, statuses []domain.Status) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if ap.BarberID != barberID {
			continue
		}
		if len(statuses) > 0 && !contains(statuses, domain.ParseStatus(ap.Status)) {
			continue
		}
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeRepo) ListForCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.apps {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func contains(list []domain.Status, s domain.Status) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

var _ domain.Repository = (*fakeRepo)(nil)
