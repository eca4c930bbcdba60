package pricing

import "palmera/models"

// EntranceBreakdown is the per-category entrance charge detail.
type EntranceBreakdown struct {
	Lines []models.EntranceLine
	Total float64
}

// ComputeEntrance prices the entrance tickets for every guest category
// under the given mode. Categories with a zero quantity still get a line
// so the summary can render a full grid.
func ComputeEntrance(q models.TicketQuantities, rt *models.RateTable, mode models.Mode) EntranceBreakdown {
	var out EntranceBreakdown
	for _, cat := range models.GuestCategories {
		unit := UnitPrice(rt, cat, mode)
		qty := q.Get(cat)
		amount := float64(qty) * unit
		out.Lines = append(out.Lines, models.EntranceLine{
			Category:  cat,
			Quantity:  qty,
			UnitPrice: unit,
			Amount:    amount,
		})
		out.Total += amount
	}
	return out
}

// ComputeExtraPersonFee returns the surcharge for guests beyond the
// accommodation's capacity. Disabled accommodations (perHead <= 0) and
// head counts within capacity charge nothing.
func ComputeExtraPersonFee(guests, capacity int, perHead float64) float64 {
	if perHead <= 0 || guests <= capacity {
		return 0
	}
	return float64(guests-capacity) * perHead
}
