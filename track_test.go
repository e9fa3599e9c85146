package cascade

import (
	"math"
	"testing"
)

func TestTrackValueBoundaries(t *testing.T) {
	tr := Track{
		Interval: Interval{Start: 0.2, End: 0.6},
		Curve:    Linear,
		Begin:    10,
		End:      30,
	}
	tests := []struct {
		name     string
		progress float64
		want     float64
	}{
		{"before window", 0.0, 10},
		{"at open", 0.2, 10},
		{"midpoint", 0.4, 20},
		{"at close", 0.6, 30},
		{"after window", 1.0, 30},
		{"far below range", -5, 10},
		{"far above range", 5, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Value(tt.progress)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Value(%v) = %v, want %v", tt.progress, got, tt.want)
			}
		})
	}
}

func TestTrackEndpointsExact(t *testing.T) {
	// Endpoint values come from the boundary branches, so they are exact for
	// any curve — including overshoot ones.
	curves := []Curve{Linear, OutCubic, InOutQuad, OutElastic, OutBounce, OutBack}
	for _, curve := range curves {
		tr := Track{Interval: Interval{Start: 0, End: 1}, Curve: curve, Begin: 3, End: 7}
		if got := tr.Value(0); got != 3 {
			t.Errorf("Value(0) = %v, want exactly 3", got)
		}
		if got := tr.Value(1); got != 7 {
			t.Errorf("Value(1) = %v, want exactly 7", got)
		}
	}
}

func TestTrackDescendingRange(t *testing.T) {
	// Begin above End is fine: slide-in offsets animate 40 -> 0.
	tr := Track{
		Interval: Interval{Start: 0, End: 1},
		Curve:    Linear,
		Begin:    40,
		End:      0,
	}
	if got := tr.Value(0.5); math.Abs(got-20) > 1e-6 {
		t.Errorf("Value(0.5) = %v, want 20", got)
	}
	if got := tr.Value(1); got != 0 {
		t.Errorf("Value(1) = %v, want exactly 0", got)
	}
}

func TestTrackElasticOvershoot(t *testing.T) {
	tr := Track{
		Interval: Interval{Start: 0, End: 1},
		Curve:    OutElastic,
		Begin:    0,
		End:      1,
	}

	overshot := false
	for i := 1; i < 100; i++ {
		if tr.Value(float64(i)/100) > 1 {
			overshot = true
			break
		}
	}
	if !overshot {
		t.Error("elastic track never exceeded its end value; overshoot lost")
	}
	if got := tr.Value(1); got != 1 {
		t.Errorf("Value(1) = %v, want exactly 1 (settles to declared end)", got)
	}
}

func TestTrackEasedInterpolation(t *testing.T) {
	// Inside the window the value is begin + (end-begin)*curve(local t).
	tr := Track{
		Interval: Interval{Start: 0.1, End: 0.5},
		Curve:    OutCubic,
		Begin:    0,
		End:      100,
	}
	local := tr.Interval.At(0.3) // 0.5
	want := 100 * OutCubic(local)
	if got := tr.Value(0.3); math.Abs(got-want) > 1e-6 {
		t.Errorf("Value(0.3) = %v, want %v", got, want)
	}
}
