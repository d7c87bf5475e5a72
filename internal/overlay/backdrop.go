package overlay

// Rect is a cell rectangle. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Closer is anything a backdrop click can close.
type Closer interface {
	Close()
}

// Backdrop routes clicks for a modal whose content occupies Content.
type Backdrop struct {
	Content Rect
	Target  Closer
}

// Click handles a click at (x, y). A click outside the content closes the target and
// returns true. A click inside stops there and the target stays open.
func (b Backdrop) Click(x, y int) (closed bool) {
	if b.Content.Contains(x, y) {
		return false
	}
	if b.Target != nil {
		b.Target.Close()
	}
	return true
}
