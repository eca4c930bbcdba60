package models

import "time"

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	ReservationID string
	GuestEmail    string
	Amount        float64
	Method        string // "card" or "cash"
	Currency      string
	Idempotency   string
	Description   string
	Metadata      map[string]string
}

type Invoice struct {
	InvoiceID       string
	ReservationID   string
	Amount          float64
	Currency        string
	Status          string // "pending", "paid", "failed"
	Method          string
	PaymentIntentID string
	ClientSecret    string
	Error           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
