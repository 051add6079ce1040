package models

import "time"

// PendingBooking is an unauthenticated client's in-progress selection,
// parked while the client is sent through the login redirect. One draft per
// client session, last write wins; discarded once replayed or found stale.
type PendingBooking struct {
	ProviderID     string    `json:"providerId"`
	ProfessionalID string    `json:"professionalId"`
	ServiceIDs     []string  `json:"serviceIds"`
	Date           string    `json:"date"` // "YYYY-MM-DD"
	Time           string    `json:"time"` // "HH:MM"
	SavedAt        time.Time `json:"savedAt"`
}
