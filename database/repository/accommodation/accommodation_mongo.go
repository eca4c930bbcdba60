package accommodationRepo

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

// ErrNotFound is returned when an accommodation id cannot be resolved.
var ErrNotFound = errors.New("accommodation not found")

// MongoAccommodationRepo implements AccommodationRepository using MongoDB.
type MongoAccommodationRepo struct {
	coll *mongo.Collection
}

// NewMongoAccommodationRepo creates a new AccommodationRepository backed by MongoDB.
func NewMongoAccommodationRepo() AccommodationRepository {
	coll := database.DB().Collection("accommodations")
	repo := &MongoAccommodationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAccommodationRepo) ensureIndexes() error {
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

// Create inserts a new accommodation document.
func (r *MongoAccommodationRepo) Create(acc *models.Accommodation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, acc); err != nil {
		return fmt.Errorf("failed to create accommodation: %w", err)
	}
	return nil
}

// Update modifies an existing accommodation document.
func (r *MongoAccommodationRepo) Update(acc *models.Accommodation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	acc.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": acc.ID}, bson.M{"$set": acc})
	if err != nil {
		return fmt.Errorf("failed to update accommodation with id %s: %w", acc.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an accommodation document by its ID.
func (r *MongoAccommodationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete accommodation with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves an accommodation by its unique ID.
func (r *MongoAccommodationRepo) GetByID(id string) (*models.Accommodation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acc models.Accommodation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch accommodation with id %s: %w", id, err)
	}
	return &acc, nil
}

// List retrieves accommodations, optionally filtered by status.
func (r *MongoAccommodationRepo) List(status string) ([]models.Accommodation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations: %w", err)
	}
	defer cursor.Close(ctx)

	var accs []models.Accommodation
	if err := cursor.All(ctx, &accs); err != nil {
		return nil, fmt.Errorf("failed to decode accommodations: %w", err)
	}
	return accs, nil
}
