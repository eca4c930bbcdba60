package blockedRepo

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

// ErrNotFound is returned when a blocked range id cannot be resolved.
var ErrNotFound = errors.New("blocked range not found")

// MongoBlockedRepo implements BlockedRepository using MongoDB.
type MongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo creates a new BlockedRepository backed by MongoDB.
func NewMongoBlockedRepo() BlockedRepository {
	coll := database.DB().Collection("blocked_ranges")
	repo := &MongoBlockedRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBlockedRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "block_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "accommodation_id", Value: 1}, {Key: "start_date", Value: 1}}},
		{Keys: bson.D{{Key: "reservation_id", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new blocked range document.
func (r *MongoBlockedRepo) Create(b *models.BlockedRange) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	b.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to create blocked range: %w", err)
	}
	return nil
}

// Update modifies an existing blocked range document.
func (r *MongoBlockedRepo) Update(b *models.BlockedRange) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"block_id": b.BlockID}, bson.M{"$set": b})
	if err != nil {
		return fmt.Errorf("failed to update blocked range with id %s: %w", b.BlockID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a blocked range document by its ID.
func (r *MongoBlockedRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"block_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete blocked range with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a blocked range by its unique ID.
func (r *MongoBlockedRepo) GetByID(id string) (*models.BlockedRange, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.BlockedRange
	if err := r.coll.FindOne(ctx, bson.M{"block_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch blocked range with id %s: %w", id, err)
	}
	return &b, nil
}

// List retrieves every blocked range.
func (r *MongoBlockedRepo) List() ([]models.BlockedRange, error) {
	return r.find(bson.M{})
}

// ListManual retrieves only the manually curated ranges.
func (r *MongoBlockedRepo) ListManual() ([]models.BlockedRange, error) {
	return r.find(bson.M{"from_reservation": false})
}

// ListForWindow retrieves ranges that could intersect [startDate, endDate)
// for the given accommodation. Dates are ISO formatted so lexicographic
// comparison matches chronological order.
func (r *MongoBlockedRepo) ListForWindow(startDate, endDate, accommodationID string) ([]models.BlockedRange, error) {
	return r.find(bson.M{
		"start_date": bson.M{"$lt": endDate},
		"end_date":   bson.M{"$gt": startDate},
		"$or": bson.A{
			bson.M{"accommodation_id": ""},
			bson.M{"accommodation_id": bson.M{"$exists": false}},
			bson.M{"accommodation_id": accommodationID},
		},
	})
}

// DeleteByReservation removes the derived range for a cancelled reservation.
func (r *MongoBlockedRepo) DeleteByReservation(reservationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"reservation_id": reservationID}); err != nil {
		return fmt.Errorf("failed to delete blocked ranges for reservation %s: %w", reservationID, err)
	}
	return nil
}

func (r *MongoBlockedRepo) find(filter bson.M) ([]models.BlockedRange, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked ranges: %w", err)
	}
	defer cursor.Close(ctx)

	var ranges []models.BlockedRange
	if err := cursor.All(ctx, &ranges); err != nil {
		return nil, fmt.Errorf("failed to decode blocked ranges: %w", err)
	}
	return ranges, nil
}
