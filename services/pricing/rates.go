// Package pricing implements the reservation pricing engine: entrance
// ticket rates, ticket quantity edits, amenity aggregation, and the
// amount breakdown with its payment validation rules.
//
// Everything here is a pure function over in-memory values. Missing or
// still-loading data (a nil rate table, an empty catalog) prices at zero
// rather than failing, so the wizard never stalls on partial data; the
// caller is responsible for checking loading state before display.
package pricing

import "palmera/models"

// UnitPrice returns the entrance-ticket unit price for the given category
// and mode. A nil rate table or an unknown category/mode resolves to 0.
func UnitPrice(rt *models.RateTable, cat models.GuestCategory, mode models.Mode) float64 {
	return rt.Pair(cat).For(mode)
}
