package professionalRepo

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

// ErrNotFound is returned when no professional matches the given ID.
var ErrNotFound = errors.New("professional not found")

// MongoProfessionalRepo implements ProfessionalRepository backed by MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs the repository and ensures indexes.
func NewMongoProfessionalRepo() *MongoProfessionalRepo {
	repo := &MongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(fmt.Sprintf("professional repo: %v", err))
	}
	return repo
}

// professionalDoc carries the retired weeklyHours shape alongside the
// current one so legacy documents can be upgraded on first read.
type professionalDoc struct {
	models.Professional `bson:",inline"`
	LegacyHours         map[string]models.LegacyDaySchedule `bson:"weeklyHours,omitempty"`
}

func (repo *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc professionalDoc
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional %s: %w", id, err)
	}

	if len(doc.LegacyHours) > 0 {
		if err := repo.migrateLegacyHours(ctx, &doc); err != nil {
			return nil, err
		}
	}
	return &doc.Professional, nil
}

func (repo *MongoProfessionalRepo) ListByProvider(providerID string) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := repo.coll.Find(ctx, bson.M{"providerId": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list professionals for provider %s: %w", providerID, err)
	}
	defer cur.Close(ctx)

	var profs []models.Professional
	if err := cur.All(ctx, &profs); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return profs, nil
}

func (repo *MongoProfessionalRepo) Create(prof *models.Professional) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	prof.CreatedAt = now
	prof.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, prof); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

func (repo *MongoProfessionalRepo) UpdateSchedule(id string, schedule models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"schedule": schedule, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule for professional %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the professionals collection.
func (repo *MongoProfessionalRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}},
			Options: options.Index().SetName("provider_idx"),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create professional indexes: %w", err)
	}
	return nil
}
