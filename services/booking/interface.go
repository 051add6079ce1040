package booking

import (
	"glambook/models"
)

// BookingRequest is a client's proposed appointment, as submitted to the
// confirm endpoint or replayed from a saved draft.
type BookingRequest struct {
	ProviderID     string   `json:"providerId"`
	ProfessionalID string   `json:"professionalId"`
	ClientID       string   `json:"clientId"`
	ServiceIDs     []string `json:"serviceIds"`
	Date           string   `json:"date"` // "YYYY-MM-DD"
	Time           string   `json:"time"` // "HH:MM"
}

// BookingService is the client-facing booking engine: availability queries,
// the validate-and-commit path, appointment lifecycle transitions, and
// pending-draft recovery.
type BookingService interface {
	// GetDayAvailability returns the classified slot list for a
	// professional, date and service selection. The result is advisory;
	// ConfirmBooking re-validates against live data.
	GetDayAvailability(professionalID, date string, serviceIDs []string) (*models.DayAvailability, error)
	// ConfirmBooking re-validates the proposed slot against the latest
	// appointment state and commits atomically.
	ConfirmBooking(req BookingRequest) (*models.Appointment, error)
	// UpdateAppointmentStatus transitions an appointment (cancel, confirm,
	// complete). Completion is only accepted after the appointment's end
	// time has passed.
	UpdateAppointmentStatus(id, newStatus string) error
	// SaveDraft parks an unauthenticated client's selection for the
	// duration of a login redirect.
	SaveDraft(sessionID string, draft models.PendingBooking) error
	// ResumeDraft replays a saved draft into a normal booking attempt.
	// A missing, malformed or stale draft yields (nil, nil).
	ResumeDraft(sessionID, clientID, pageProviderID string) (*models.Appointment, error)
}
