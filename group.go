package cascade

import "fmt"

// PropertyConfig describes one animated property shared by every item in a
// Group. Each item gets its own Track for the property, with a window computed
// from the item's index, Step, and Span.
type PropertyConfig struct {
	// Name identifies the property in value queries ("opacity", "offsetY", ...).
	// Required and unique within a Group.
	Name string
	// Step is the per-item stagger offset on the normalized timeline: item i's
	// window starts at i*Step before clamping. Must be positive when the group
	// has more than one item.
	Step float64
	// Span is the width of each item's window on the normalized timeline.
	// Must be positive.
	Span float64
	// Begin and End are the property values at the window edges.
	Begin, End float64
	// Curve reshapes window-local progress. Nil means Linear.
	Curve Curve
	// MaxStart optionally caps how far a window's start may be staggered.
	// Zero means the default cap, which reserves room for a minimum-width
	// window at the tail of the timeline.
	MaxStart float64
}

// Config describes a Group. All fields are read at construction; the group
// never looks at the Config again.
type Config struct {
	// Count is the number of items. Zero is valid (an empty reveal); the item
	// count is fixed for the group's lifetime — build a new Group if it changes.
	Count int
	// Duration is the clock's run time in seconds.
	Duration float64
	// Properties are the animated properties, in the order each item's Tracks
	// are laid out.
	Properties []PropertyConfig
	// Driver optionally supplies per-frame ticks. Leave nil to drive the group
	// manually with Update.
	Driver Driver
	// OnUpdate, if set, is called after every advancing tick with the clock
	// progress and the freshly computed value matrix (one PropertyValues per
	// item, indexed by item).
	OnUpdate func(progress float64, values []PropertyValues)
}

// Item bundles the ordered tracks of one list element. Tracks follow the
// order of Config.Properties.
type Item struct {
	Index  int
	Tracks []Track
}

// Group aggregates Count items by len(Properties) tracks around one Clock.
// The whole interval and track matrix is built eagerly at construction and
// never mutated afterward.
type Group struct {
	clock    *Clock
	items    []Item
	names    []string
	onUpdate func(progress float64, values []PropertyValues)
	cancel   func()
	delay    float64
	disposed bool
}

// NewGroup validates cfg and builds the full track matrix. Construction fails
// fast with an ErrInvalidConfig-wrapped error — there is no partially built
// group, and nothing is subscribed on the error path.
func NewGroup(cfg Config) (*Group, error) {
	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: count %d is negative", ErrInvalidConfig, cfg.Count)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v must be positive", ErrInvalidConfig, cfg.Duration)
	}
	seen := make(map[string]bool, len(cfg.Properties))
	for i, p := range cfg.Properties {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: property %d has no name", ErrInvalidConfig, i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate property %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true
		if cfg.Count > 1 && p.Step <= 0 {
			return nil, fmt.Errorf("%w: property %q: step %v must be positive", ErrInvalidConfig, p.Name, p.Step)
		}
		if cfg.Count > 0 && p.Span <= 0 {
			return nil, fmt.Errorf("%w: property %q: span %v must be positive", ErrInvalidConfig, p.Name, p.Span)
		}
		if p.MaxStart < 0 || p.MaxStart > 1 {
			return nil, fmt.Errorf("%w: property %q: max start %v outside [0,1]", ErrInvalidConfig, p.Name, p.MaxStart)
		}
	}

	clock, err := NewClock(cfg.Duration, nil)
	if err != nil {
		return nil, err
	}

	g := &Group{
		clock:    clock,
		items:    make([]Item, cfg.Count),
		names:    make([]string, len(cfg.Properties)),
		onUpdate: cfg.OnUpdate,
	}
	for j, p := range cfg.Properties {
		g.names[j] = p.Name
	}
	for i := range g.items {
		tracks := make([]Track, len(cfg.Properties))
		for j, p := range cfg.Properties {
			curve := p.Curve
			if curve == nil {
				curve = Linear
			}
			tracks[j] = Track{
				Interval: StaggerInterval(i, p.Step, p.Span, p.MaxStart),
				Curve:    curve,
				Begin:    p.Begin,
				End:      p.End,
			}
		}
		g.items[i] = Item{Index: i, Tracks: tracks}
	}

	g.clock.OnTick(g.fanOut)
	if cfg.Driver != nil {
		g.cancel = cfg.Driver.Subscribe(g.tick)
	}
	return g, nil
}

func (g *Group) fanOut(progress float64) {
	if g.onUpdate != nil {
		g.onUpdate(progress, g.ValuesAt(progress))
	}
}

// tick is the group's driver callback: it burns down a pending replay delay
// first, then advances the owned clock.
func (g *Group) tick(dt float64) {
	if g.disposed {
		return
	}
	if g.delay > 0 {
		g.delay -= dt
		if g.delay <= 0 {
			g.delay = 0
			g.clock.Replay()
		}
		return
	}
	g.clock.Tick(dt)
}

// Update advances the group by dt seconds. Use it when no Driver was
// configured; with a Driver the same work happens on its ticks.
func (g *Group) Update(dt float64) error {
	if g.disposed {
		return ErrDisposed
	}
	g.tick(dt)
	return nil
}

// Trigger resets the clock to progress 0 and starts it. Call it when the
// owning component first appears.
func (g *Group) Trigger() error {
	if g.disposed {
		return ErrDisposed
	}
	g.delay = 0
	return g.clock.Replay()
}

// Replay restarts the reveal from progress 0. The value sequence is identical
// to a fresh Trigger — a replay is a restart, never a continue.
func (g *Group) Replay() error {
	return g.Trigger()
}

// ReplayAfter arms a replay to fire once delay seconds of tick time have
// passed, implementing the usual pull-to-refresh settle delay. The clock keeps
// its current state while the delay burns down on Driver ticks or Update
// calls. A non-positive delay replays immediately; arming again overwrites a
// pending delay.
func (g *Group) ReplayAfter(delay float64) error {
	if g.disposed {
		return ErrDisposed
	}
	if delay <= 0 {
		return g.Replay()
	}
	g.delay = delay
	return nil
}

// ValuesAt is a pure query: the value of every property of every item at the
// given timeline progress, independent of where the clock actually is. The
// result slice is indexed by item. Usable even after Dispose.
func (g *Group) ValuesAt(progress float64) []PropertyValues {
	values := make([]PropertyValues, len(g.items))
	for i, item := range g.items {
		pv := make(PropertyValues, len(item.Tracks))
		for j, tr := range item.Tracks {
			pv[g.names[j]] = tr.Value(progress)
		}
		values[i] = pv
	}
	return values
}

// Values returns ValuesAt the clock's current progress.
func (g *Group) Values() []PropertyValues {
	return g.ValuesAt(g.clock.Progress())
}

// Track returns the track for one item and property name.
func (g *Group) Track(item int, property string) (Track, bool) {
	if item < 0 || item >= len(g.items) {
		return Track{}, false
	}
	for j, name := range g.names {
		if name == property {
			return g.items[item].Tracks[j], true
		}
	}
	return Track{}, false
}

// Len returns the number of items.
func (g *Group) Len() int {
	return len(g.items)
}

// Progress returns the owned clock's current progress.
func (g *Group) Progress() float64 {
	return g.clock.Progress()
}

// State returns the owned clock's lifecycle state.
func (g *Group) State() ClockState {
	return g.clock.State()
}

// Done reports whether the reveal has run to completion.
func (g *Group) Done() bool {
	return g.clock.State() == ClockCompleted
}

// Dispose cancels the driver subscription and disposes the owned clock.
// Idempotent, and synchronous: no tick can be observed after it returns.
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.clock.Dispose()
}

// IsDisposed returns true once Dispose has been called.
func (g *Group) IsDisposed() bool {
	return g.disposed
}
