package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments and
// bookingDays collections.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	apptIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: all appointments for a professional on a date.
		{
			Keys:    bson.D{{Key: "professionalId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("professional_date_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("client_created_idx"),
		},
		// Expiry sweep over stale pendings.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("status_created_idx"),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, apptIndexes); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}

	lockIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "professionalId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_professional_date"),
		},
	}
	if _, err := repo.lockColl.Indexes().CreateMany(ctx, lockIndexes); err != nil {
		return fmt.Errorf("failed to create booking day indexes: %w", err)
	}
	return nil
}
