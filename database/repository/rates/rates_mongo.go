// Package ratesRepo stores the single entrance-fee rate table document.
package ratesRepo

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

// The rate table is a singleton document keyed by this id.
const rateTableID = "entrance-rates"

// RatesRepository defines data access for the entrance-fee rate table.
type RatesRepository interface {
	// Get returns the rate table, or nil when none has been configured
	// yet. Callers treat nil as "no data", pricing everything at zero.
	Get() (*models.RateTable, error)
	Put(rt *models.RateTable) error
}

// MongoRatesRepo implements RatesRepository using MongoDB.
type MongoRatesRepo struct {
	coll *mongo.Collection
}

// NewMongoRatesRepo creates a new RatesRepository backed by MongoDB.
func NewMongoRatesRepo() RatesRepository {
	return &MongoRatesRepo{coll: database.DB().Collection("rates")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Get retrieves the rate table document.
func (r *MongoRatesRepo) Get() (*models.RateTable, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc struct {
		ID    string           `bson:"_id"`
		Table models.RateTable `bson:"table"`
	}
	if err := r.coll.FindOne(ctx, bson.M{"_id": rateTableID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rate table: %w", err)
	}
	return &doc.Table, nil
}

// Put upserts the rate table document.
func (r *MongoRatesRepo) Put(rt *models.RateTable) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rt.UpdatedAt = time.Now()
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": rateTableID},
		bson.M{"$set": bson.M{"table": rt}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to store rate table: %w", err)
	}
	return nil
}
