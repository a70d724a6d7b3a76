package payout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-marketplace/internal/domain/account"
	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

type memRepo struct {
	users   map[uint]models.User
	created []models.BarberPayment
	stored  []models.BarberPayment
}

func (m *memRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (m *memRepo) ListForBarber(context.Context, uint) ([]models.BarberPayment, error) {
	return m.stored, nil
}

func (m *memRepo) Create(_ context.Context, p *models.BarberPayment) error {
	p.ID = uint(len(m.created) + 1)
	m.created = append(m.created, *p)
	return nil
}

var admin = account.Identity{UserID: 1, Role: account.RoleAdmin}

func TestRecordPayout_StoresMinorUnits(t *testing.T) {
	repo := &memRepo{users: map[uint]models.User{3: {ID: 3, Role: "barber"}}}
	uc := NewRecordPayout(repo, nil)

	v, err := uc.Execute(context.Background(), admin, RecordPayoutInput{
		BarberID:  3,
		Amount:    decimal.RequireFromString("499.005"),
		Status:    "SUCCESS",
		Reference: " UTR123 ",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := *repo.created[0].Amount; got != 49901 {
		t.Fatalf("want 49901 minor units, got %d", got)
	}
	if repo.created[0].Status != "success" || repo.created[0].Reference != "UTR123" {
		t.Fatalf("unexpected row %+v", repo.created[0])
	}
	if v.Amount != 499.01 {
		t.Fatalf("view amount %v", v.Amount)
	}
}

func TestRecordPayout_Validation(t *testing.T) {
	repo := &memRepo{users: map[uint]models.User{
		3: {ID: 3, Role: "barber"},
		4: {ID: 4, Role: "customer"},
	}}
	uc := NewRecordPayout(repo, nil)

	cases := []struct {
		name string
		in   RecordPayoutInput
		code string
	}{
		{"bad status", RecordPayoutInput{BarberID: 3, Amount: decimal.NewFromInt(1), Status: "refunded"}, "invalid_status"},
		{"zero amount", RecordPayoutInput{BarberID: 3, Amount: decimal.Zero, Status: "success"}, "invalid_amount"},
		{"negative amount", RecordPayoutInput{BarberID: 3, Amount: decimal.NewFromInt(-5), Status: "success"}, "invalid_amount"},
		{"rounds to zero minor units", RecordPayoutInput{BarberID: 3, Amount: decimal.RequireFromString("0.001"), Status: "success"}, "invalid_amount"},
		{"just under half a paisa", RecordPayoutInput{BarberID: 3, Amount: decimal.RequireFromString("0.004"), Status: "success"}, "invalid_amount"},
		{"unknown barber", RecordPayoutInput{BarberID: 99, Amount: decimal.NewFromInt(1), Status: "success"}, "barber_not_found"},
		{"not a barber", RecordPayoutInput{BarberID: 4, Amount: decimal.NewFromInt(1), Status: "success"}, "barber_not_found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), admin, tc.in); !httperr.IsBusiness(err, tc.code) {
				t.Fatalf("want %s, got %v", tc.code, err)
			}
		})
	}
	if len(repo.created) != 0 {
		t.Fatalf("nothing should have been stored")
	}
}

func TestRecordPayout_HalfPaisaRoundsUp(t *testing.T) {
	repo := &memRepo{users: map[uint]models.User{3: {ID: 3, Role: "barber"}}}

	in := RecordPayoutInput{BarberID: 3, Amount: decimal.RequireFromString("0.005"), Status: "success"}
	if _, err := NewRecordPayout(repo, nil).Execute(context.Background(), admin, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.created) != 1 || *repo.created[0].Amount != 1 {
		t.Fatalf("want one payout of 1 minor unit, got %+v", repo.created)
	}
}

func TestListPayouts_MajorUnits(t *testing.T) {
	a, b := int64(49900), int64(5)
	repo := &memRepo{stored: []models.BarberPayment{
		{ID: 1, Amount: &a, Status: "Success"},
		{ID: 2, Amount: &b, Status: "pending"},
		{ID: 3, Amount: nil, Status: "failed"},
	}}

	got, err := NewListPayouts(repo).Execute(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].Amount != 499 || got[0].Status != "success" || got[1].Amount != 0.05 || got[2].Amount != 0 {
		t.Fatalf("unexpected %+v", got)
	}
}
