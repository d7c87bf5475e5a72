package viewport

import "testing"

var specOrder = []Section{Home, About, Performances, Gallery, Contact, Hero}

func boxes(m map[Section]Box) Geometry {
	return GeometryFunc(func(s Section) (Box, bool) {
		b, ok := m[s]
		return b, ok
	})
}

func TestObservePicksSectionCrossingThreshold(t *testing.T) {
	tr := NewTracker(specOrder, 3, Home)
	got := tr.Observe(boxes(map[Section]Box{
		Home:         {Top: -40, Bottom: -1},
		About:        {Top: 0, Bottom: 20},
		Performances: {Top: 21, Bottom: 50},
	}))
	if got != About {
		t.Fatalf("active = %s, want about", got)
	}
}

func TestObserveNoMatchKeepsPrevious(t *testing.T) {
	tr := NewTracker(specOrder, 3, Home)
	tr.Observe(boxes(map[Section]Box{About: {Top: 2, Bottom: 10}}))
	if tr.Active() != About {
		t.Fatalf("setup: active = %s", tr.Active())
	}
	// scrolled into an untracked region
	gap := boxes(map[Section]Box{About: {Top: -30, Bottom: -2}, Performances: {Top: 10, Bottom: 40}})
	for i := 0; i < 3; i++ {
		if got := tr.Observe(gap); got != About {
			t.Fatalf("no-match observe %d changed active to %s", i, got)
		}
	}
}

func TestObserveBoundariesInclusive(t *testing.T) {
	tr := NewTracker(specOrder, 5, Home)
	if got := tr.Observe(boxes(map[Section]Box{Gallery: {Top: 5, Bottom: 9}})); got != Gallery {
		t.Fatalf("top == threshold should match, got %s", got)
	}
	if got := tr.Observe(boxes(map[Section]Box{Contact: {Top: -3, Bottom: 5}})); got != Contact {
		t.Fatalf("bottom == threshold should match, got %s", got)
	}
}

func TestObserveFirstMatchInDeclarationOrderWins(t *testing.T) {
	tr := NewTracker(specOrder, 3, Home)
	overlap := boxes(map[Section]Box{
		Hero:    {Top: 0, Bottom: 10},
		Gallery: {Top: 0, Bottom: 10},
	})
	if got := tr.Observe(overlap); got != Gallery {
		t.Fatalf("gallery is declared before hero, got %s", got)
	}
}

func TestOnChangeFiresOnlyOnTransition(t *testing.T) {
	tr := NewTracker(Sections, 3, Home)
	var changes []Section
	tr.OnChange(func(s Section) { changes = append(changes, s) })
	g := boxes(map[Section]Box{About: {Top: 0, Bottom: 9}})
	tr.Observe(g)
	tr.Observe(g)
	if len(changes) != 1 || changes[0] != About {
		t.Fatalf("changes = %v", changes)
	}
}

func TestAttachDetachScopesSubscription(t *testing.T) {
	var ev Events
	layout := map[Section]Box{Home: {Top: 0, Bottom: 10}}
	tr := NewTracker(Sections, 3, Home)
	tr.Attach(&ev, boxes(layout))
	if ev.Len() != 1 || !tr.Attached() {
		t.Fatalf("expected one listener")
	}

	delete(layout, Home)
	layout[Contact] = Box{Top: 1, Bottom: 30}
	ev.Emit()
	if tr.Active() != Contact {
		t.Fatalf("scroll event should update active, got %s", tr.Active())
	}

	tr.Detach()
	tr.Detach()
	if ev.Len() != 0 || tr.Attached() {
		t.Fatalf("detach should remove the listener")
	}
	layout[About] = Box{Top: 0, Bottom: 5}
	delete(layout, Contact)
	ev.Emit()
	if tr.Active() != Contact {
		t.Fatalf("detached tracker must not observe, got %s", tr.Active())
	}
}

func TestAttachTwiceReplacesListener(t *testing.T) {
	var ev Events
	tr := NewTracker(Sections, 3, Home)
	g := boxes(nil)
	tr.Attach(&ev, g)
	tr.Attach(&ev, g)
	if ev.Len() != 1 {
		t.Fatalf("listeners = %d, want 1", ev.Len())
	}
}

func TestSectionLabels(t *testing.T) {
	if Hero.Label() != "Účinkující" {
		t.Fatalf("hero label = %q", Hero.Label())
	}
	if Section("faq").Valid() {
		t.Fatalf("faq is not an anchor section")
	}
	if Section("faq").Label() != "faq" {
		t.Fatalf("unknown label falls back to id")
	}
}
