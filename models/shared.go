package models

// Mode selects the time-of-day tariff for both accommodations and
// entrance tickets.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
)

// Valid reports whether m is one of the known tariff modes.
func (m Mode) Valid() bool {
	return m == ModeDay || m == ModeNight
}

// GuestCategory is the entrance-ticket pricing category.
type GuestCategory string

const (
	CategoryAdult     GuestCategory = "adult"
	CategoryChild     GuestCategory = "child"
	CategoryPWDSenior GuestCategory = "pwdSenior"
)

// GuestCategories lists every category in display order.
var GuestCategories = []GuestCategory{CategoryAdult, CategoryChild, CategoryPWDSenior}

// Valid reports whether c is one of the known guest categories.
func (c GuestCategory) Valid() bool {
	return c == CategoryAdult || c == CategoryChild || c == CategoryPWDSenior
}

// Publication status shared by accommodations and amenities.
const (
	StatusPosted      = "POSTED"
	StatusUnpublished = "UNPUBLISHED"
	StatusArchived    = "ARCHIVED"
)

// TariffPair holds the day and night prices for a single item.
type TariffPair struct {
	Day   float64 `bson:"day" json:"day"`
	Night float64 `bson:"night" json:"night"`
}

// For returns the price for the given mode. Unknown modes price at zero
// rather than failing; callers validate the mode at the API boundary.
func (t TariffPair) For(mode Mode) float64 {
	switch mode {
	case ModeDay:
		return t.Day
	case ModeNight:
		return t.Night
	default:
		return 0
	}
}
