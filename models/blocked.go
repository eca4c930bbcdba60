package models

import "time"

// BlockedRange marks a date window during which an accommodation (or the
// whole resort, when AccommodationID is empty) cannot be booked.
type BlockedRange struct {
	BlockID         string    `bson:"block_id" json:"blockId"`                             // Unique identifier for the block
	AccommodationID string    `bson:"accommodation_id,omitempty" json:"accommodationId,omitempty"` // Empty means resort-wide
	StartDate       string    `bson:"start_date" json:"startDate"`                         // "YYYY-MM-DD", inclusive
	EndDate         string    `bson:"end_date" json:"endDate"`                             // "YYYY-MM-DD", exclusive
	Reason          string    `bson:"reason" json:"reason"`                                // e.g., "maintenance", "private event"
	FromReservation bool      `bson:"from_reservation" json:"isFromReservation"`           // Derived from a confirmed reservation
	ReservationID   string    `bson:"reservation_id,omitempty" json:"reservationId,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// AppliesTo reports whether the block covers the given accommodation.
func (b BlockedRange) AppliesTo(accommodationID string) bool {
	return b.AccommodationID == "" || b.AccommodationID == accommodationID
}
