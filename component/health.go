package component

// Health is an integer health pool. Current is never clamped on damage;
// a zero or negative value is a signal for the owning session to act on.
type Health struct {
	Max     int
	Current int
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// Damage subtracts amount from Current.
func (h *Health) Damage(amount int) {
	if h == nil || amount <= 0 {
		return
	}
	h.Current -= amount
}

// Depleted reports whether Current has reached zero or below.
func (h *Health) Depleted() bool {
	return h == nil || h.Current <= 0
}

// Reset restores Current to Max.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
}

// Ratio returns Current/Max clamped to [0, 1].
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
