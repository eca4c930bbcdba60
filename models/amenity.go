package models

import "time"

// Amenity is an optional add-on a guest may include once per reservation
// (e.g., karaoke machine, extra grill, videoke). Free amenities are
// informational and never enter pricing.
type Amenity struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`         // Only meaningful when HasPrice is true
	HasPrice    bool      `bson:"has_price" json:"hasPrice"`  // False for free/informational amenities
	Status      string    `bson:"status" json:"status"`       // POSTED, UNPUBLISHED, or ARCHIVED
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// AmenitySelection maps amenity id to a 0/1 include flag. The domain
// models "one per reservation", not a free quantity.
type AmenitySelection map[string]int
