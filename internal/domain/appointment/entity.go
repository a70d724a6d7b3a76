package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-marketplace/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(ap *models.Appointment) error {
	if err := CanAccept(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Decline(ap *models.Appointment, now time.Time) error {
	if err := CanDecline(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	ap.CancelledAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(ParseStatus(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
