package core

// ScreenStack holds the popups drawn over the page. The last item owns input.
type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// Replace swaps the top screen after it returned a new value from Update.
func (s *ScreenStack) Replace(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = screen
}

// Drain pops every screen, top first, dismissing the ones bound to overlay state.
func (s *ScreenStack) Drain() int {
	n := 0
	for len(s.items) > 0 {
		if d, ok := s.Pop().(Dismisser); ok {
			d.Dismiss()
		}
		n++
	}
	return n
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
