package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glambook/database"
	"glambook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlotTaken is returned by CreateIfFree when an existing non-cancelled
// appointment overlaps the proposed interval.
var ErrSlotTaken = errors.New("appointment slot already taken")

// ErrNotFound is returned when no appointment matches the given ID.
var ErrNotFound = errors.New("appointment not found")

// MongoAppointmentRepo implements AppointmentRepository backed by MongoDB.
type MongoAppointmentRepo struct {
	coll     *mongo.Collection
	lockColl *mongo.Collection
}

// NewMongoAppointmentRepo constructs the repository and ensures indexes.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.DB()
	repo := &MongoAppointmentRepo{
		coll:     db.Collection("appointments"),
		lockColl: db.Collection("bookingDays"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(fmt.Sprintf("appointment repo: %v", err))
	}
	return repo
}

func (repo *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) ListNonCancelled(professionalID, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return repo.listNonCancelled(ctx, professionalID, date)
}

// listNonCancelled is the shared query body; the transactional commit path
// calls it with the session context so the read joins the transaction.
func (repo *MongoAppointmentRepo) listNonCancelled(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"professionalId": professionalID,
		"date":           date,
		"status":         bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cur, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for %s on %s: %w", professionalID, date, err)
	}
	defer cur.Close(ctx)

	var appts []models.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) ListByClient(clientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := repo.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for client %s: %w", clientID, err)
	}
	defer cur.Close(ctx)

	var appts []models.Appointment
	if err := cur.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(id, newStatus string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": newStatus, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoAppointmentRepo) CancelStalePending(cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateMany(ctx,
		bson.M{
			"status":    models.StatusPending,
			"createdAt": bson.M{"$lt": cutoff},
		},
		bson.M{"$set": bson.M{"status": models.StatusCancelled, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel stale pending appointments: %w", err)
	}
	return res.ModifiedCount, nil
}
