package models

// Service is a bookable offering of a provider. Duration drives slot length;
// price is additive across multi-service bookings.
type Service struct {
	ID           string `bson:"id" json:"id"`
	ProviderID   string `bson:"providerId" json:"providerId"`
	Name         string `bson:"name" json:"name"`
	DurationMins int    `bson:"durationMins" json:"durationMins"`
	PriceCents   int64  `bson:"priceCents" json:"priceCents"`
}

// TotalDuration sums the durations of the given services in minutes.
func TotalDuration(services []Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMins
	}
	return total
}

// TotalPrice sums the prices of the given services in cents.
func TotalPrice(services []Service) int64 {
	var total int64
	for _, s := range services {
		total += s.PriceCents
	}
	return total
}
