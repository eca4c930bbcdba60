package models

import "time"

// Reservation statuses.
const (
	ReservationPending   = "Pending"   // Down payment received, balance outstanding
	ReservationConfirmed = "Confirmed" // Paid in full
	ReservationCancelled = "Cancelled"
	ReservationCompleted = "Completed"
)

// Reservation is a confirmed booking record persisted after checkout.
type Reservation struct {
	ID              string           `bson:"id" json:"id"`                           // Unique reservation identifier (UUID)
	AccommodationID string           `bson:"accommodation_id" json:"accommodationId"`
	Mode            Mode             `bson:"mode" json:"mode"`
	StartDate       string           `bson:"start_date" json:"startDate"`
	EndDate         string           `bson:"end_date" json:"endDate"`
	Tickets         TicketQuantities `bson:"tickets" json:"tickets"`
	Amenities       AmenitySelection `bson:"amenities,omitempty" json:"amenities,omitempty"`
	GuestName       string           `bson:"guest_name" json:"guestName"`
	GuestEmail      string           `bson:"guest_email" json:"guestEmail"`
	GuestPhone      string           `bson:"guest_phone" json:"guestPhone"`
	Amount          AmountBreakdown  `bson:"amount" json:"amount"`
	AmountPaid      float64          `bson:"amount_paid" json:"amountPaid"`
	InvoiceID       string           `bson:"invoice_id" json:"invoiceId"`
	Status          string           `bson:"status" json:"status"`
	CreatedAt       time.Time        `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time        `bson:"updated_at" json:"updatedAt"`
}
