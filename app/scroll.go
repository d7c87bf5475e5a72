package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/internal/viewport"
)

// scrollAnim is an in-flight smooth scroll. Frames carry seq so that a newer
// scroll or a manual one orphans older frames.
type scrollAnim struct {
	seq    int
	target int
	active bool
}

func (p *Page) maxOffset() int {
	return max(0, len(p.doc.lines)-p.height)
}

// setOffset moves the viewport and emits a scroll event when it actually moved.
func (p *Page) setOffset(o int) {
	o = min(max(o, 0), p.maxOffset())
	if o == p.offset {
		return
	}
	p.offset = o
	p.events.Emit()
}

func (p *Page) scrollBy(delta int) {
	p.stopScroll()
	p.setOffset(p.offset + delta)
}

func (p *Page) stopScroll() {
	p.anim.seq++
	p.anim.active = false
}

// scrollTo starts a smooth scroll to line.
func (p *Page) scrollTo(line int) tea.Cmd {
	p.anim.seq++
	p.anim.target = min(max(line, 0), p.maxOffset())
	p.anim.active = p.anim.target != p.offset
	if !p.anim.active {
		return nil
	}
	return frame(p.anim.seq)
}

func frame(seq int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return scrollFrameMsg{seq: seq} })
}

func (p *Page) stepScroll(seq int) tea.Cmd {
	if !p.anim.active || seq != p.anim.seq || p.disposed {
		return nil
	}
	diff := p.anim.target - p.offset
	dist := max(diff, -diff)
	step := min(max(p.deps.ScrollStep, dist/4), dist)
	if diff < 0 {
		step = -step
	}
	before := p.offset
	p.setOffset(p.offset + step)
	if p.offset == p.anim.target || p.offset == before {
		p.anim.active = false
		return nil
	}
	return frame(seq)
}

// navigate smooth-scrolls so that s starts at the top of the viewport.
func (p *Page) navigate(s viewport.Section) tea.Cmd {
	box, ok := p.doc.boxes[s]
	if !ok {
		return nil
	}
	return p.scrollTo(box.Top)
}

// viewBox is the tracker's geometry: section extents relative to the viewport top.
func (p *Page) viewBox(s viewport.Section) (viewport.Box, bool) {
	b, ok := p.doc.boxes[s]
	if !ok {
		return viewport.Box{}, false
	}
	return viewport.Box{Top: b.Top - p.offset, Bottom: b.Bottom - p.offset}, true
}

func (p *Page) ensureVisible(line int) {
	switch {
	case line < p.offset:
		p.stopScroll()
		p.setOffset(line - 1)
	case line >= p.offset+p.height:
		p.stopScroll()
		p.setOffset(line - p.height + 2)
	}
}
