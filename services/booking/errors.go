package booking

import (
	"errors"
	"fmt"

	"palmera/services/pricing"
)

var (
	// ErrDraftNotFound means the draft session expired or never existed.
	ErrDraftNotFound = errors.New("booking draft not found or expired")
	// ErrUnresolvedAccommodation means the draft references a deleted or
	// unknown accommodation. No sane pricing can proceed past this.
	ErrUnresolvedAccommodation = errors.New("accommodation cannot be resolved")
	// ErrInvalidMode is returned for a mode outside {day, night}.
	ErrInvalidMode = errors.New("invalid tariff mode")
	// ErrInvalidDates is returned for malformed or inverted date ranges.
	ErrInvalidDates = errors.New("invalid date range")
	// ErrDatesBlocked means the requested window conflicts with a blocked
	// range. Confirmation fails closed on this; the wizard merely warns.
	ErrDatesBlocked = errors.New("requested dates are not available")
)

// PaymentBoundError reports a payment amount outside
// [MinimumPayable, Total] at confirmation time.
type PaymentBoundError struct {
	Validation pricing.PaymentValidation
}

func (e *PaymentBoundError) Error() string {
	return fmt.Sprintf("payment amount violates %s bound (minimum %.2f, total %.2f)",
		e.Validation.Violation, e.Validation.MinimumPayable, e.Validation.Total)
}
