package models

import "time"

// Professional is a staff member of a provider. They offer a subset of the
// provider's services and own a weekly working schedule.
type Professional struct {
	ID         string         `bson:"id" json:"id"`
	ProviderID string         `bson:"providerId" json:"providerId"`
	Name       string         `bson:"name" json:"name"`
	ServiceIDs []string       `bson:"serviceIds" json:"serviceIds"`
	Schedule   WeeklySchedule `bson:"schedule" json:"schedule"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt  time.Time      `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// OffersAll reports whether the professional offers every one of the given
// service ids. A professional can only be booked for a subset of their
// offered services.
func (p Professional) OffersAll(serviceIDs []string) bool {
	offered := make(map[string]bool, len(p.ServiceIDs))
	for _, id := range p.ServiceIDs {
		offered[id] = true
	}
	for _, id := range serviceIDs {
		if !offered[id] {
			return false
		}
	}
	return true
}
