package pricing

import "palmera/models"

// Ticket quantity edits. Each operation returns the resulting quantities
// without mutating its input, and keeps the invariant
// q.Total() <= capacity at every step. Over-capacity edits degrade
// silently (no-op or clamp) instead of erroring.

// IncrementTicket adds one ticket for the given category. If the
// accommodation is already at capacity the edit is ignored.
func IncrementTicket(q models.TicketQuantities, cat models.GuestCategory, capacity int) models.TicketQuantities {
	if q.Total() >= capacity {
		return q
	}
	q.Set(cat, q.Get(cat)+1)
	return q
}

// DecrementTicket removes one ticket for the given category, floored at 0.
func DecrementTicket(q models.TicketQuantities, cat models.GuestCategory) models.TicketQuantities {
	if v := q.Get(cat); v > 0 {
		q.Set(cat, v-1)
	}
	return q
}

// SetTicket applies a direct numeric entry for the given category. The
// requested value is clamped into the headroom left by the other two
// categories; negative values (including cleared/non-numeric input mapped
// to a negative sentinel by the caller) become 0.
func SetTicket(q models.TicketQuantities, cat models.GuestCategory, v, capacity int, policy ClampPolicy) models.TicketQuantities {
	others := q.Total() - q.Get(cat)
	q.Set(cat, policy.Quantity(v, capacity-others))
	return q
}

// ClearTickets resets every category to 0 unconditionally.
func ClearTickets() models.TicketQuantities {
	return models.TicketQuantities{}
}
