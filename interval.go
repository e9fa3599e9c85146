package cascade

import "fmt"

// minIntervalSpan is the smallest window width the scheduler will produce.
// Start clamping reserves this much room before the end of the timeline, so a
// late item's window compresses toward the tail instead of collapsing to zero
// width or escaping [0,1].
const minIntervalSpan = 0.01

// Interval is the sub-window of the shared timeline during which one item's
// animation is active. Scheduler-built intervals always satisfy
// 0 <= Start < End <= 1.
type Interval struct {
	Start, End float64
}

// At returns interval-local normalized time for a global timeline progress:
// 0 before the window opens, 1 once it has closed, linear in between.
func (iv Interval) At(progress float64) float64 {
	if progress <= iv.Start {
		return 0
	}
	if progress >= iv.End {
		return 1
	}
	return (progress - iv.Start) / (iv.End - iv.Start)
}

// Width returns End - Start.
func (iv Interval) Width() float64 {
	return iv.End - iv.Start
}

// StaggerInterval computes the timeline window for one item of a staggered
// sequence. The raw window is [index*step, index*step+span]; clamping keeps it
// inside [0,1] for any index.
//
// Order matters: Start is clamped first, against an upper bound that reserves
// room for at least the minimum span; End is then clamped with Start plus the
// minimum span as a floor. Clamping End alone would let a large index invert
// the window.
//
// maxStart caps how far Start may be pushed; pass 0 for the default cap
// (1 minus the minimum span).
func StaggerInterval(index int, step, span, maxStart float64) Interval {
	if maxStart <= 0 || maxStart > 1-minIntervalSpan {
		maxStart = 1 - minIntervalSpan
	}
	start := clamp(float64(index)*step, 0, maxStart)
	end := clamp(start+span, start+minIntervalSpan, 1)
	return Interval{Start: start, End: end}
}

// Intervals builds the full stagger column: one window per item index in
// [0, count), each offset from the previous by step and span wide.
//
// Degenerate counts are valid, not errors: count 0 yields an empty slice,
// count 1 yields the single window [0, span], and large counts compress later
// windows toward the tail of the timeline. Only the parameters themselves are
// validated: a negative count, a non-positive step (when more than one item
// needs offsetting), or a non-positive span fail with ErrInvalidConfig.
func Intervals(count int, step, span float64) ([]Interval, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: count %d is negative", ErrInvalidConfig, count)
	}
	if count > 1 && step <= 0 {
		return nil, fmt.Errorf("%w: step %v must be positive", ErrInvalidConfig, step)
	}
	if count > 0 && span <= 0 {
		return nil, fmt.Errorf("%w: span %v must be positive", ErrInvalidConfig, span)
	}
	ivs := make([]Interval, count)
	for i := range ivs {
		ivs[i] = StaggerInterval(i, step, span, 0)
	}
	return ivs, nil
}
