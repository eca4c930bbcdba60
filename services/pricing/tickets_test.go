package pricing

import (
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
)

func TestIncrementTicket(t *testing.T) {
	q := models.TicketQuantities{}
	q = IncrementTicket(q, models.CategoryAdult, 2)
	q = IncrementTicket(q, models.CategoryChild, 2)
	assert.Equal(t, models.TicketQuantities{Adult: 1, Child: 1}, q)

	// At capacity the edit is a silent no-op.
	q = IncrementTicket(q, models.CategoryPWDSenior, 2)
	assert.Equal(t, models.TicketQuantities{Adult: 1, Child: 1}, q)
}

func TestDecrementTicket(t *testing.T) {
	q := models.TicketQuantities{Adult: 1}
	q = DecrementTicket(q, models.CategoryAdult)
	assert.Equal(t, 0, q.Adult)

	// Floored at zero.
	q = DecrementTicket(q, models.CategoryAdult)
	assert.Equal(t, 0, q.Adult)
}

func TestSetTicket_Clamping(t *testing.T) {
	tests := []struct {
		name     string
		initial  models.TicketQuantities
		cat      models.GuestCategory
		value    int
		capacity int
		want     int
	}{
		{
			name:     "within headroom",
			initial:  models.TicketQuantities{Child: 1},
			cat:      models.CategoryAdult,
			value:    2,
			capacity: 4,
			want:     2,
		},
		{
			name:     "clamped to remaining headroom",
			initial:  models.TicketQuantities{Child: 2, PWDSenior: 1},
			cat:      models.CategoryAdult,
			value:    9,
			capacity: 4,
			want:     1,
		},
		{
			name:     "exactly fills capacity",
			initial:  models.TicketQuantities{Child: 2},
			cat:      models.CategoryAdult,
			value:    2,
			capacity: 4,
			want:     2,
		},
		{
			name:     "negative input becomes zero",
			initial:  models.TicketQuantities{Adult: 3},
			cat:      models.CategoryAdult,
			value:    -5,
			capacity: 4,
			want:     0,
		},
		{
			name:     "no headroom left",
			initial:  models.TicketQuantities{Child: 4},
			cat:      models.CategoryAdult,
			value:    1,
			capacity: 4,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SetTicket(tt.initial, tt.cat, tt.value, tt.capacity, DefaultClamp)
			assert.Equal(t, tt.want, got.Get(tt.cat))
			assert.LessOrEqual(t, got.Total(), tt.capacity)
		})
	}
}

func TestClearTickets(t *testing.T) {
	assert.Equal(t, models.TicketQuantities{}, ClearTickets())
}

// The capacity invariant holds across arbitrary edit sequences.
func TestCapacityInvariant(t *testing.T) {
	const capacity = 3
	q := models.TicketQuantities{}

	type op func(models.TicketQuantities) models.TicketQuantities
	ops := []op{
		func(q models.TicketQuantities) models.TicketQuantities {
			return IncrementTicket(q, models.CategoryAdult, capacity)
		},
		func(q models.TicketQuantities) models.TicketQuantities {
			return IncrementTicket(q, models.CategoryChild, capacity)
		},
		func(q models.TicketQuantities) models.TicketQuantities {
			return SetTicket(q, models.CategoryPWDSenior, 7, capacity, DefaultClamp)
		},
		func(q models.TicketQuantities) models.TicketQuantities {
			return DecrementTicket(q, models.CategoryAdult)
		},
		func(q models.TicketQuantities) models.TicketQuantities {
			return SetTicket(q, models.CategoryAdult, 99, capacity, DefaultClamp)
		},
		func(q models.TicketQuantities) models.TicketQuantities {
			return IncrementTicket(q, models.CategoryPWDSenior, capacity)
		},
	}

	for i, apply := range ops {
		q = apply(q)
		assert.LessOrEqualf(t, q.Total(), capacity, "after op %d", i)
		assert.GreaterOrEqual(t, q.Adult, 0)
		assert.GreaterOrEqual(t, q.Child, 0)
		assert.GreaterOrEqual(t, q.PWDSenior, 0)
	}
}
