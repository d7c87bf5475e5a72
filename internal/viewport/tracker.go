package viewport

// Source delivers scroll notifications. Subscribe returns a function that removes fn.
type Source interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Tracker keeps the active section in sync with scroll position.
type Tracker struct {
	order     []Section
	threshold int
	active    Section
	onChange  func(Section)
	detach    func()
}

// NewTracker tracks order (top to bottom), starting at initial. threshold is the
// distance from the viewport top at which a section counts as current.
func NewTracker(order []Section, threshold int, initial Section) *Tracker {
	return &Tracker{
		order:     append([]Section(nil), order...),
		threshold: threshold,
		active:    initial,
	}
}

// Active returns the current section.
func (t *Tracker) Active() Section { return t.active }

// Threshold returns the containment line offset.
func (t *Tracker) Threshold() int { return t.threshold }

// OnChange registers fn to run whenever the active section changes.
func (t *Tracker) OnChange(fn func(Section)) { t.onChange = fn }

// Observe recomputes the active section from g. The first section in order whose box
// crosses the threshold wins; with no match the active section is left unchanged.
func (t *Tracker) Observe(g Geometry) Section {
	for _, s := range t.order {
		box, ok := g.Box(s)
		if !ok {
			continue
		}
		if box.Contains(t.threshold) {
			if s != t.active {
				t.active = s
				if t.onChange != nil {
					t.onChange(s)
				}
			}
			break
		}
	}
	return t.active
}

// Attach subscribes to src so each scroll event observes g. A previous attachment is
// released first.
func (t *Tracker) Attach(src Source, g Geometry) {
	t.Detach()
	t.detach = src.Subscribe(func() { t.Observe(g) })
}

// Detach releases the scroll subscription. Safe to call more than once.
func (t *Tracker) Detach() {
	if t.detach != nil {
		t.detach()
		t.detach = nil
	}
}

// Attached reports whether a subscription is live.
func (t *Tracker) Attached() bool { return t.detach != nil }
