package content

// Store holds the published snapshot and the selected performances tab.
type Store struct {
	snapshot  Snapshot
	activeTab int
	hasTab    bool
	published int
}

// Publish replaces the snapshot wholesale. The tab selection is initialized to the first
// show of the first snapshot that has any; after that it is only changed by SelectTab,
// unless the selected show disappeared from the new snapshot.
func (s *Store) Publish(snap Snapshot) {
	s.snapshot = snap
	s.published++
	if s.hasTab {
		if _, ok := snap.Show(s.activeTab); ok {
			return
		}
		s.hasTab = false
	}
	if len(snap.Shows) > 0 {
		s.activeTab = snap.Shows[0].ID
		s.hasTab = true
	}
}

// Snapshot returns the last published snapshot, empty before the first publish.
func (s *Store) Snapshot() Snapshot { return s.snapshot }

// Loaded reports whether a snapshot was ever published.
func (s *Store) Loaded() bool { return s.published > 0 }

// Publishes returns how many snapshots were published.
func (s *Store) Publishes() int { return s.published }

// ActiveTab returns the selected show id, absent before data loads or when there are no shows.
func (s *Store) ActiveTab() (int, bool) { return s.activeTab, s.hasTab }

// SelectTab selects the show with id. Unknown ids are ignored.
func (s *Store) SelectTab(id int) bool {
	if _, ok := s.snapshot.Show(id); !ok {
		return false
	}
	s.activeTab = id
	s.hasTab = true
	return true
}

// StepTab moves the selection by delta within show order, clamped at the ends.
func (s *Store) StepTab(delta int) bool {
	shows := s.snapshot.Shows
	if len(shows) == 0 || !s.hasTab {
		return false
	}
	idx := 0
	for i, sh := range shows {
		if sh.ID == s.activeTab {
			idx = i
			break
		}
	}
	next := min(max(idx+delta, 0), len(shows)-1)
	if next == idx {
		return false
	}
	s.activeTab = shows[next].ID
	return true
}
