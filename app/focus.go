package app

import tea "github.com/charmbracelet/bubbletea"

type targetKind int

const (
	targetCTA targetKind = iota
	targetShow
	targetEvent
	targetFaq
	targetPerformer
	targetGallery
	targetField
	targetSubmit
)

// target is a focusable element. index is the record index, or the contact.Field
// for form fields.
type target struct {
	kind  targetKind
	index int
}

func (p *Page) focused(t target) bool {
	return p.hasFocus && p.focus == t
}

// moveFocus cycles through targets in document order. Without focus it starts at
// the first target on screen.
func (p *Page) moveFocus(delta int) tea.Cmd {
	ts := p.doc.targets
	if len(ts) == 0 {
		return nil
	}
	idx := -1
	if p.hasFocus {
		for i, t := range ts {
			if t == p.focus {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		idx = p.firstVisibleTarget()
		if delta < 0 {
			idx = (idx - 1 + len(ts)) % len(ts)
		}
	} else {
		idx = (idx + delta + len(ts)) % len(ts)
	}
	return p.focusOn(ts[idx])
}

func (p *Page) firstVisibleTarget() int {
	for i, t := range p.doc.targets {
		if line, ok := p.doc.lineOf(t); ok && line >= p.offset {
			return i
		}
	}
	return 0
}

func (p *Page) focusOn(t target) tea.Cmd {
	p.focus, p.hasFocus = t, true
	cmd := p.syncFieldFocus()
	p.relayout()
	if line, ok := p.doc.lineOf(t); ok {
		p.ensureVisible(line)
	}
	return cmd
}

func (p *Page) clearFocus() {
	p.hasFocus = false
	p.syncFieldFocus()
}
