package models

import "time"

// TicketQuantities counts entrance tickets per guest category.
type TicketQuantities struct {
	Adult     int `bson:"adult" json:"adult"`
	Child     int `bson:"child" json:"child"`
	PWDSenior int `bson:"pwd_senior" json:"pwdSenior"`
}

// Total returns the combined ticket count, which doubles as the guest
// count when guests are not tracked separately.
func (q TicketQuantities) Total() int {
	return q.Adult + q.Child + q.PWDSenior
}

// Get returns the quantity for the given category.
func (q TicketQuantities) Get(cat GuestCategory) int {
	switch cat {
	case CategoryAdult:
		return q.Adult
	case CategoryChild:
		return q.Child
	case CategoryPWDSenior:
		return q.PWDSenior
	default:
		return 0
	}
}

// Set writes the quantity for the given category. Unknown categories are
// ignored.
func (q *TicketQuantities) Set(cat GuestCategory, v int) {
	switch cat {
	case CategoryAdult:
		q.Adult = v
	case CategoryChild:
		q.Child = v
	case CategoryPWDSenior:
		q.PWDSenior = v
	}
}

// AmountBreakdown is the derived pricing summary for a draft. It is
// recomputed in full whenever any input changes.
type AmountBreakdown struct {
	AccommodationPrice float64         `json:"accommodationPrice"`
	EntranceTotal      float64         `json:"entranceTotal"`  // Zero when entrance is bundled or opted out
	ExtraPersonFee     float64         `json:"extraPersonFee"`
	AmenitiesTotal     float64         `json:"amenitiesTotal"`
	Total              float64         `json:"total"`
	MinimumPayable     float64         `json:"minimumPayable"` // 50% of the accommodation tariff
	EntranceLines      []EntranceLine  `json:"entranceLines,omitempty"` // Per-category detail, shown even when bundled
}

// EntranceLine is one per-category row of the entrance breakdown.
type EntranceLine struct {
	Category  GuestCategory `json:"category"`
	Quantity  int           `json:"quantity"`
	UnitPrice float64       `json:"unitPrice"`
	Amount    float64       `json:"amount"`
	Bundled   bool          `json:"bundled"` // Displayed but not summed when pool access is bundled
}

// BookingDraft is the in-progress reservation carried across the wizard
// steps. It lives in the draft session store until confirmed or cancelled
// and has no server-side identity before confirmation.
type BookingDraft struct {
	DraftID            string           `json:"draftId"`
	AccommodationID    string           `json:"accommodationId"`
	Mode               Mode             `json:"mode"`
	StartDate          string           `json:"startDate"` // "YYYY-MM-DD"
	EndDate            string           `json:"endDate"`   // "YYYY-MM-DD", exclusive
	Tickets            TicketQuantities `json:"tickets"`
	Amenities          AmenitySelection `json:"amenities"`
	IncludeEntranceFee bool             `json:"includeEntranceFee"` // Only meaningful without bundled pool access
	GuestName          string           `json:"guestName,omitempty"`
	GuestEmail         string           `json:"guestEmail,omitempty"`
	GuestPhone         string           `json:"guestPhone,omitempty"`
	Amount             AmountBreakdown  `json:"amount"`
	CreatedAt          time.Time        `json:"createdAt"`
}
