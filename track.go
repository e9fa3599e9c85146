package cascade

// Track binds one Interval, one easing Curve, and a begin/end value pair for a
// single animated property of a single item. Tracks are immutable value types;
// a Group builds its whole track matrix once at construction.
type Track struct {
	Interval Interval
	Curve    Curve // must be non-nil; NewGroup defaults nil to Linear
	Begin    float64
	End      float64
}

// Value returns the track's value at the given global timeline progress.
// It is total over all finite inputs: Begin before the window opens, End at or
// past its close, eased interpolation inside. The boundary branches make the
// endpoint values exact regardless of the curve's own arithmetic.
func (tr Track) Value(progress float64) float64 {
	if progress <= tr.Interval.Start {
		return tr.Begin
	}
	if progress >= tr.Interval.End {
		return tr.End
	}
	t := (progress - tr.Interval.Start) / (tr.Interval.End - tr.Interval.Start)
	return tr.Begin + (tr.End-tr.Begin)*tr.Curve(t)
}
