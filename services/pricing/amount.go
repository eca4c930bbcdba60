package pricing

import "palmera/models"

// Down payment rule: a reservation is provisionally confirmed once half
// of the accommodation tariff is paid. Entrance, extra-person, and
// amenity charges are not discounted by this rule.
const downPaymentRate = 0.5

// PaymentViolation names which bound a proposed payment amount broke.
type PaymentViolation string

const (
	BelowMinimum PaymentViolation = "BelowMinimum"
	AboveMaximum PaymentViolation = "AboveMaximum"
)

// PaymentValidation is the outcome of checking a proposed payment amount
// against a breakdown. It carries the bounds so the UI can render the
// warning without recomputing.
type PaymentValidation struct {
	OK             bool             `json:"ok"`
	Violation      PaymentViolation `json:"violation,omitempty"`
	MinimumPayable float64          `json:"minimumPayable"`
	Total          float64          `json:"total"`
}

// ComputeAmount derives the full pricing breakdown for a draft. It is
// recomputed from scratch on every input change; the six dependent
// numbers are never patched individually.
//
// Entrance charges are summed only when the accommodation lacks bundled
// pool access and the guest has kept the entrance opt-in. With bundled
// pool access the per-category lines are still produced (marked bundled)
// so the summary can show them, but they never enter the total.
func ComputeAmount(
	acc models.Accommodation,
	mode models.Mode,
	q models.TicketQuantities,
	rt *models.RateTable,
	amenitiesTotal float64,
	includeEntrance bool,
) models.AmountBreakdown {
	accommodationPrice := acc.Price.For(mode)
	entrance := ComputeEntrance(q, rt, mode)
	extraFee := ComputeExtraPersonFee(q.Total(), acc.Capacity, acc.ExtraPersonFee)

	b := models.AmountBreakdown{
		AccommodationPrice: accommodationPrice,
		ExtraPersonFee:     extraFee,
		AmenitiesTotal:     amenitiesTotal,
	}

	switch {
	case acc.HasPoolAccess:
		// Bundled: show the lines at no extra charge.
		for _, line := range entrance.Lines {
			line.Bundled = true
			b.EntranceLines = append(b.EntranceLines, line)
		}
	case includeEntrance:
		b.EntranceLines = entrance.Lines
		b.EntranceTotal = entrance.Total
	}

	b.Total = accommodationPrice + extraFee + b.EntranceTotal + amenitiesTotal
	b.MinimumPayable = accommodationPrice * downPaymentRate
	return b
}

// ValidatePayment checks a proposed payment amount against the closed
// interval [MinimumPayable, Total]. It never mutates the breakdown; a
// failed validation reports which bound was violated so the caller can
// warn and keep the draft intact.
func ValidatePayment(amount float64, b models.AmountBreakdown) PaymentValidation {
	v := PaymentValidation{
		MinimumPayable: b.MinimumPayable,
		Total:          b.Total,
	}
	switch {
	case amount < b.MinimumPayable:
		v.Violation = BelowMinimum
	case amount > b.Total:
		v.Violation = AboveMaximum
	default:
		v.OK = true
	}
	return v
}
