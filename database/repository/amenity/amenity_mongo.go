package amenityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"palmera/database"
	"palmera/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an amenity id cannot be resolved.
var ErrNotFound = errors.New("amenity not found")

// MongoAmenityRepo implements AmenityRepository using MongoDB.
type MongoAmenityRepo struct {
	coll *mongo.Collection
}

// NewMongoAmenityRepo creates a new AmenityRepository backed by MongoDB.
func NewMongoAmenityRepo() AmenityRepository {
	coll := database.DB().Collection("amenities")
	repo := &MongoAmenityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAmenityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new amenity document.
func (r *MongoAmenityRepo) Create(a *models.Amenity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create amenity: %w", err)
	}
	return nil
}

// Update modifies an existing amenity document.
func (r *MongoAmenityRepo) Update(a *models.Amenity) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update amenity with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an amenity document by its ID.
func (r *MongoAmenityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete amenity with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves an amenity by its unique ID.
func (r *MongoAmenityRepo) GetByID(id string) (*models.Amenity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Amenity
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch amenity with id %s: %w", id, err)
	}
	return &a, nil
}

// List retrieves amenities, optionally filtered by status.
func (r *MongoAmenityRepo) List(status string) ([]models.Amenity, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	defer cursor.Close(ctx)

	var amenities []models.Amenity
	if err := cursor.All(ctx, &amenities); err != nil {
		return nil, fmt.Errorf("failed to decode amenities: %w", err)
	}
	return amenities, nil
}
