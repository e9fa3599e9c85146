package cascade

import "errors"

// ErrInvalidConfig is wrapped by every construction error. Configuration is
// validated up front; a failed construction leaves nothing behind.
var ErrInvalidConfig = errors.New("cascade: invalid configuration")

// ErrDisposed is returned by control operations invoked after Dispose.
// It is fatal for that instance only — other groups and clocks are unaffected.
var ErrDisposed = errors.New("cascade: disposed")

// PropertyValues maps property names to their current interpolated values for
// a single item.
type PropertyValues map[string]float64

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
