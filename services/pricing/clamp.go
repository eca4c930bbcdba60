package pricing

// ClampPolicy resolves edits that would push a value out of its legal
// range. The resort UI never blocks a guest mid-edit, so the single
// production policy adjusts silently: quantities clamp into the capacity
// headroom and amenity flags clamp into {0,1}. Keeping the policy as an
// explicit value lets tests assert on clamped outcomes rather than on
// implicit behavior.
type ClampPolicy struct{}

// DefaultClamp is the policy used throughout the booking wizard.
var DefaultClamp = ClampPolicy{}

// Quantity clamps a requested ticket quantity into [0, headroom].
// A negative headroom clamps to 0.
func (ClampPolicy) Quantity(v, headroom int) int {
	if v < 0 {
		return 0
	}
	if headroom < 0 {
		return 0
	}
	if v > headroom {
		return headroom
	}
	return v
}

// Flag clamps an amenity selection value into {0, 1}.
func (ClampPolicy) Flag(v int) int {
	if v <= 0 {
		return 0
	}
	return 1
}
