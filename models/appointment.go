package models

import "time"

// Appointment statuses. Appointments are never deleted, only
// status-transitioned, so cancelled records stay behind as an audit trail.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment represents a booked visit: one client, one professional, one
// or more services back to back in a single time window.
type Appointment struct {
	ID             string    `bson:"id" json:"id"`
	ProviderID     string    `bson:"providerId" json:"providerId"`
	ProfessionalID string    `bson:"professionalId" json:"professionalId"`
	ClientID       string    `bson:"clientId" json:"clientId"`
	ServiceIDs     []string  `bson:"serviceIds" json:"serviceIds"`
	Date           string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start          int       `bson:"start" json:"start"`
	End            int       `bson:"end" json:"end"`
	DurationMins   int       `bson:"durationMins" json:"durationMins"`
	TotalPriceCents int64    `bson:"totalPriceCents" json:"totalPriceCents"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// Interval returns the appointment's time window.
func (a Appointment) Interval() TimeInterval {
	return TimeInterval{Start: a.Start, End: a.End}
}

// ValidStatusTransition reports whether an appointment may move from one
// status to another. Terminal states never transition.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}
