package utils

// Tracker latches the last value emitted on one actuation channel. The zero
// value is ready to use: channels start latched at zero.
type Tracker struct {
	LastValue float64
	Value     float64
}

// Update stores val and reports whether it differs from the latched value.
func (t *Tracker) Update(val float64) (updated bool) {
	if t.Value != val {
		t.LastValue = t.Value
		t.Value = val
		return true
	}
	return false
}
