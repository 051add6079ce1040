package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"` // always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Provider is a service business (salon, barbershop) that owns a set of
// services and employs one or more professionals.
type Provider struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Email       string   `bson:"email" json:"email,omitempty"`
	PhoneNumber string   `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address     string   `bson:"address" json:"address,omitempty"`
	LocationGeo GeoPoint `bson:"locationGeo,omitempty" json:"locationGeo,omitzero"`
	Currency    string   `bson:"currency" json:"currency"`
	// RequiresConfirmation controls the status a freshly committed
	// appointment receives: pending when the provider vets bookings by
	// hand, confirmed otherwise.
	RequiresConfirmation bool      `bson:"requiresConfirmation" json:"requiresConfirmation"`
	Services             []Service `bson:"services" json:"services"`
	CreatedAt            time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt            time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ServiceByID looks up one of the provider's services.
func (p Provider) ServiceByID(id string) (Service, bool) {
	for _, s := range p.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
