package models

import "time"

// Accommodation is a bookable unit: a room, cottage, or event hall.
type Accommodation struct {
	ID             string     `bson:"id" json:"id"`                            // Unique accommodation identifier (UUID)
	Name           string     `bson:"name" json:"name"`                        // Display name (e.g., "Family Cottage A")
	Type           string     `bson:"type" json:"type"`                        // e.g., "room", "cottage", "event_hall"
	Description    string     `bson:"description" json:"description"`          // Marketing copy shown on the site
	Capacity       int        `bson:"capacity" json:"capacity"`                // Maximum number of guests
	Price          TariffPair `bson:"price" json:"price"`                      // Day and night tariffs
	HasPoolAccess  bool       `bson:"has_pool_access" json:"hasPoolAccess"`    // Entrance tickets bundled when true
	ExtraPersonFee float64    `bson:"extra_person_fee" json:"extraPersonFee"`  // Per-head surcharge beyond capacity; zero disables
	MaxStayDays    int        `bson:"max_stay_days" json:"maxStayDays"`        // Longest bookable stay in days
	Status         string     `bson:"status" json:"status"`                    // POSTED, UNPUBLISHED, or ARCHIVED
	Images         []string   `bson:"images,omitempty" json:"images,omitempty"` // Gallery image URLs
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updatedAt"`
}
