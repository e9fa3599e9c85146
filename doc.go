// Package cascade drives staggered reveal animations — fade, slide, scale —
// for lists of items from a single shared timeline clock.
//
// Each item in a [Group] animates inside its own sub-window of the shared
// timeline, offset from its neighbors by a configurable stagger step, so the
// items reveal one after another in a cascade. Every property of every item
// is a [Track]: one [Interval], one easing [Curve], and a begin/end value
// pair. Easing is provided by [gween]'s ease package, adapted to normalized
// [0,1] progress.
//
// # Quick start
//
//	group, err := cascade.NewGroup(cascade.Config{
//		Count:    6,
//		Duration: 1.2,
//		Properties: []cascade.PropertyConfig{
//			{Name: "opacity", Step: 0.1, Span: 0.4, Begin: 0, End: 1, Curve: cascade.OutCubic},
//			{Name: "offsetY", Step: 0.1, Span: 0.4, Begin: 40, End: 0, Curve: cascade.OutCubic},
//			{Name: "scale", Step: 0.1, Span: 0.4, Begin: 0.8, End: 1, Curve: cascade.OutElastic},
//		},
//	})
//	if err != nil {
//		// invalid configuration
//	}
//	defer group.Dispose()
//
//	group.Trigger()
//	// once per frame:
//	group.Update(dt)
//	for i, values := range group.Values() {
//		_ = values["opacity"] // render item i with these values
//	}
//
// # Driving the clock
//
// There is no background goroutine or timer — the host advances time
// cooperatively, once per frame. Either call [Group.Update] yourself, or
// supply a [Driver] (such as a [FrameDriver] pumped from your game loop) in
// [Config] and the group subscribes to it until disposed.
//
// # Lifecycle
//
// A Group is an immutable snapshot: its item count and track matrix are fixed
// at construction. [Group.Trigger] starts the reveal, [Group.Replay] restarts
// it from zero (the value sequence is identical to a fresh trigger), and
// [Group.Dispose] tears down the owned clock and subscription. Whoever
// constructs a Group disposes it; after Dispose, control calls return
// [ErrDisposed] while pure queries like [Group.ValuesAt] remain usable.
//
// [gween]: https://github.com/tanema/gween
package cascade
