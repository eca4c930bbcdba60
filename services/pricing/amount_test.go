package pricing

import (
	"testing"

	"palmera/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRateTable() *models.RateTable {
	return &models.RateTable{
		Adult:     models.TariffPair{Day: 50, Night: 70},
		Child:     models.TariffPair{Day: 30, Night: 40},
		PWDSenior: models.TariffPair{Day: 20, Night: 20},
	}
}

func testAccommodation() models.Accommodation {
	return models.Accommodation{
		ID:       "cottage-a",
		Capacity: 4,
		Price:    models.TariffPair{Day: 1000, Night: 1500},
	}
}

func TestUnitPrice(t *testing.T) {
	rt := testRateTable()
	assert.Equal(t, 50.0, UnitPrice(rt, models.CategoryAdult, models.ModeDay))
	assert.Equal(t, 40.0, UnitPrice(rt, models.CategoryChild, models.ModeNight))
	assert.Equal(t, 20.0, UnitPrice(rt, models.CategoryPWDSenior, models.ModeNight))

	// A rate table that has not loaded prices everything at zero.
	assert.Equal(t, 0.0, UnitPrice(nil, models.CategoryAdult, models.ModeDay))
}

func TestComputeEntrance(t *testing.T) {
	q := models.TicketQuantities{Adult: 2, Child: 1}
	eb := ComputeEntrance(q, testRateTable(), models.ModeDay)

	assert.Equal(t, 130.0, eb.Total) // 2*50 + 1*30
	require.Len(t, eb.Lines, 3)
	assert.Equal(t, 100.0, eb.Lines[0].Amount)
	assert.Equal(t, 30.0, eb.Lines[1].Amount)
	assert.Equal(t, 0.0, eb.Lines[2].Amount)
}

func TestComputeExtraPersonFee(t *testing.T) {
	tests := []struct {
		name     string
		guests   int
		capacity int
		perHead  float64
		want     float64
	}{
		{name: "within capacity", guests: 4, capacity: 4, perHead: 100, want: 0},
		{name: "one over capacity", guests: 5, capacity: 4, perHead: 100, want: 100},
		{name: "three over capacity", guests: 7, capacity: 4, perHead: 100, want: 300},
		{name: "fee disabled", guests: 6, capacity: 4, perHead: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeExtraPersonFee(tt.guests, tt.capacity, tt.perHead))
		})
	}
}

func TestComputeAmount_EntranceIncluded(t *testing.T) {
	acc := testAccommodation()
	q := models.TicketQuantities{Adult: 2, Child: 1}

	b := ComputeAmount(acc, models.ModeDay, q, testRateTable(), 0, true)

	assert.Equal(t, 1000.0, b.AccommodationPrice)
	assert.Equal(t, 130.0, b.EntranceTotal)
	assert.Equal(t, 0.0, b.ExtraPersonFee)
	assert.Equal(t, 1130.0, b.Total)
	assert.Equal(t, 500.0, b.MinimumPayable)
}

func TestComputeAmount_ExtraPersonFee(t *testing.T) {
	acc := testAccommodation()
	acc.ExtraPersonFee = 100
	// Five guests against a capacity of four.
	q := models.TicketQuantities{Adult: 3, Child: 2}

	b := ComputeAmount(acc, models.ModeDay, q, testRateTable(), 0, true)

	assert.Equal(t, 100.0, b.ExtraPersonFee)
	assert.Equal(t, 210.0, b.EntranceTotal) // 3*50 + 2*30
	assert.Equal(t, 1310.0, b.Total)
}

func TestComputeAmount_BundledPoolAccess(t *testing.T) {
	acc := testAccommodation()
	acc.HasPoolAccess = true
	q := models.TicketQuantities{Adult: 2, Child: 1}

	b := ComputeAmount(acc, models.ModeDay, q, testRateTable(), 0, true)

	// Entrance lines are shown but never summed.
	assert.Equal(t, 0.0, b.EntranceTotal)
	assert.Equal(t, 1000.0, b.Total)
	require.Len(t, b.EntranceLines, 3)
	for _, line := range b.EntranceLines {
		assert.True(t, line.Bundled)
	}
}

func TestComputeAmount_EntranceOptedOut(t *testing.T) {
	acc := testAccommodation()
	q := models.TicketQuantities{Adult: 2}

	b := ComputeAmount(acc, models.ModeDay, q, testRateTable(), 0, false)

	assert.Equal(t, 0.0, b.EntranceTotal)
	assert.Empty(t, b.EntranceLines)
	assert.Equal(t, 1000.0, b.Total)
}

func TestComputeAmount_AmenitiesEnterTotalNotMinimum(t *testing.T) {
	acc := testAccommodation()

	b := ComputeAmount(acc, models.ModeNight, models.TicketQuantities{}, testRateTable(), 700, true)

	assert.Equal(t, 2200.0, b.Total) // 1500 + 700
	// The down payment rule discounts only the accommodation tariff.
	assert.Equal(t, 750.0, b.MinimumPayable)
}

// Increasing any one input never decreases the total.
func TestComputeAmount_Monotonic(t *testing.T) {
	acc := testAccommodation()
	acc.ExtraPersonFee = 100
	rt := testRateTable()

	base := ComputeAmount(acc, models.ModeDay, models.TicketQuantities{Adult: 1}, rt, 0, true)

	moreTickets := ComputeAmount(acc, models.ModeDay, models.TicketQuantities{Adult: 2}, rt, 0, true)
	assert.GreaterOrEqual(t, moreTickets.Total, base.Total)

	moreAmenities := ComputeAmount(acc, models.ModeDay, models.TicketQuantities{Adult: 1}, rt, 500, true)
	assert.GreaterOrEqual(t, moreAmenities.Total, base.Total)

	moreGuests := ComputeAmount(acc, models.ModeDay, models.TicketQuantities{Adult: 5}, rt, 0, true)
	assert.GreaterOrEqual(t, moreGuests.Total, base.Total)
}

// The minimum payable never exceeds the total for non-negative tariffs.
func TestComputeAmount_MinimumNeverExceedsTotal(t *testing.T) {
	rt := testRateTable()
	accommodations := []models.Accommodation{
		{Capacity: 1, Price: models.TariffPair{Day: 0, Night: 0}},
		{Capacity: 4, Price: models.TariffPair{Day: 1000, Night: 1500}},
		{Capacity: 10, Price: models.TariffPair{Day: 8000, Night: 9500}, HasPoolAccess: true},
	}
	for _, acc := range accommodations {
		for _, mode := range []models.Mode{models.ModeDay, models.ModeNight} {
			b := ComputeAmount(acc, mode, models.TicketQuantities{Adult: 1}, rt, 0, true)
			assert.LessOrEqual(t, b.MinimumPayable, b.Total)
		}
	}
}

func TestValidatePayment(t *testing.T) {
	acc := testAccommodation()
	q := models.TicketQuantities{Adult: 2, Child: 1}
	b := ComputeAmount(acc, models.ModeDay, q, testRateTable(), 0, true)

	tests := []struct {
		name      string
		amount    float64
		wantOK    bool
		violation PaymentViolation
	}{
		{name: "below minimum", amount: 400, wantOK: false, violation: BelowMinimum},
		{name: "exactly minimum", amount: 500, wantOK: true},
		{name: "between bounds", amount: 800, wantOK: true},
		{name: "exactly total", amount: 1130, wantOK: true},
		{name: "above total", amount: 2000, wantOK: false, violation: AboveMaximum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValidatePayment(tt.amount, b)
			assert.Equal(t, tt.wantOK, v.OK)
			assert.Equal(t, tt.violation, v.Violation)
			assert.Equal(t, 500.0, v.MinimumPayable)
			assert.Equal(t, 1130.0, v.Total)
		})
	}
}
