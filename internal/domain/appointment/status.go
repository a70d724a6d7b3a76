package appointment

import (
	"strings"

	"github.com/BruksfildServices01/barber-marketplace/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

// Status is the normalized (lower-case) appointment status. Raw values from
// the store arrive in either case and must go through ParseStatus.
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusRejected  Status = "rejected"
)

var (
	// RevenueStatuses count as honored and paid for earnings.
	RevenueStatuses = []Status{StatusConfirmed, StatusCompleted, StatusPaid}

	// TransactionStatuses are shown in a barber's transaction list.
	TransactionStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusPaid}
)

func ParseStatus(raw string) Status {
	switch s := Status(strings.ToLower(strings.TrimSpace(raw))); s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusPaid, StatusCancelled, StatusRejected:
		return s
	case "canceled":
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

func (s Status) IsRevenue() bool {
	return s == StatusConfirmed || s == StatusCompleted || s == StatusPaid
}

// IsLive reports whether the appointment still holds its slot.
func (s Status) IsLive() bool {
	return s == StatusPending || s.IsRevenue()
}

func (s Status) Upper() string {
	return strings.ToUpper(string(s))
}

// Values renders statuses for SQL IN clauses.
func Values(statuses []Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}

// ===============================
// Transitions
// ===============================

func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanDecline(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusPaid {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
