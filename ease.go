package cascade

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve maps normalized progress in [0,1] to an eased output. Standard curves
// satisfy f(0)=0 and f(1)=1 and stay within [0,1]. Overshoot curves
// (OutElastic, OutBack) also hit both endpoints exactly but exceed [0,1] at
// interior points — that transient overshoot is what produces the visible
// "pop", so callers must not clamp interior values.
type Curve func(t float64) float64

// FromTweenFunc adapts a gween easing function to a normalized Curve.
// Any ease.TweenFunc works, including custom ones.
func FromTweenFunc(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Built-in curves, adapted from gween/ease (Penner equations).
var (
	Linear     = FromTweenFunc(ease.Linear)
	InQuad     = FromTweenFunc(ease.InQuad)
	OutQuad    = FromTweenFunc(ease.OutQuad)
	InOutQuad  = FromTweenFunc(ease.InOutQuad)
	InCubic    = FromTweenFunc(ease.InCubic)
	OutCubic   = FromTweenFunc(ease.OutCubic)
	InOutCubic = FromTweenFunc(ease.InOutCubic)
	InSine     = FromTweenFunc(ease.InSine)
	OutSine    = FromTweenFunc(ease.OutSine)
	InOutSine  = FromTweenFunc(ease.InOutSine)
	OutBack    = FromTweenFunc(ease.OutBack)
	OutElastic = FromTweenFunc(ease.OutElastic)
	OutBounce  = FromTweenFunc(ease.OutBounce)
)

var curvesByName = map[string]Curve{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"in-sine":      InSine,
	"out-sine":     OutSine,
	"in-out-sine":  InOutSine,
	"out-back":     OutBack,
	"out-elastic":  OutElastic,
	"out-bounce":   OutBounce,
}

// CurveByName looks up a built-in curve by its identifier (e.g. "out-cubic",
// "out-elastic"). Useful when easing is chosen by configuration data rather
// than code.
func CurveByName(name string) (Curve, error) {
	c, ok := curvesByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown curve %q", ErrInvalidConfig, name)
	}
	return c, nil
}

// CurveNames returns the identifiers accepted by CurveByName, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(curvesByName))
	for name := range curvesByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
