package providerRepo

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

// ErrNotFound is returned when no provider matches the given ID.
var ErrNotFound = errors.New("provider not found")

// MongoProviderRepo implements ProviderRepository backed by MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs the repository and ensures indexes.
func NewMongoProviderRepo() *MongoProviderRepo {
	repo := &MongoProviderRepo{
		coll: database.DB().Collection("providers"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		panic(fmt.Sprintf("provider repo: %v", err))
	}
	return repo
}

func (repo *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var provider models.Provider
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", id, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now
	if _, err := repo.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (repo *MongoProviderRepo) UpdateServices(id string, services []models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"services": services, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update services for provider %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the providers collection.
func (repo *MongoProviderRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "locationGeo", Value: "2dsphere"}},
			Options: options.Index().SetName("location_geo_idx"),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create provider indexes: %w", err)
	}
	return nil
}
