package models

import "time"

// RateTable holds the entrance-ticket unit prices per guest category.
// The shape is fixed so every category resolves at compile time; a nil
// *RateTable stands for "not loaded yet" and prices everything at zero.
type RateTable struct {
	Adult     TariffPair `bson:"adult" json:"adult"`
	Child     TariffPair `bson:"child" json:"child"`
	PWDSenior TariffPair `bson:"pwd_senior" json:"pwdSenior"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// Pair returns the tariff pair for the given category. Unknown categories
// resolve to a zero pair.
func (rt *RateTable) Pair(cat GuestCategory) TariffPair {
	if rt == nil {
		return TariffPair{}
	}
	switch cat {
	case CategoryAdult:
		return rt.Adult
	case CategoryChild:
		return rt.Child
	case CategoryPWDSenior:
		return rt.PWDSenior
	default:
		return TariffPair{}
	}
}
