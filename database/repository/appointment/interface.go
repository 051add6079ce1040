package appointmentRepo

import (
	"context"
	"time"

	"glambook/models"
)

// AppointmentRepository defines the data access methods used by the booking
// engine. Appointments are never deleted; they only transition status.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// ListNonCancelled returns every appointment for a professional on a
	// date whose status is not cancelled, ordered by start time. Used both
	// for slot generation (advisory) and inside the commit transaction
	// (authoritative).
	ListNonCancelled(professionalID, date string) ([]models.Appointment, error)
	// ListByClient returns a client's appointment history, newest first.
	ListByClient(clientID string) ([]models.Appointment, error)
	// CreateIfFree inserts the appointment iff no non-cancelled appointment
	// for the same professional and date overlaps it. The read and the
	// insert happen atomically; on overlap it returns ErrSlotTaken and
	// writes nothing.
	CreateIfFree(ctx context.Context, appt *models.Appointment) error
	// UpdateStatus transitions an appointment's status. Deletion is never
	// exposed.
	UpdateStatus(id, newStatus string) error
	// CancelStalePending cancels pending appointments created before the
	// cutoff and returns how many were transitioned.
	CancelStalePending(cutoff time.Time) (int64, error)
}
