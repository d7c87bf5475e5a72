package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/icon"
	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/screens"
)

type contentLoadedMsg struct {
	snap content.Snapshot
	err  error
}

type iconsResolvedMsg struct {
	icons map[string]icon.Icon
}

type submitDoneMsg struct {
	err error
}

type resetMsg struct {
	ticket contact.Ticket
	fired  bool
}

type scrollFrameMsg struct {
	seq int
}

func (p *Page) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = m.BodySize()
	case contentLoadedMsg:
		p.loading = false
		if msg.err != nil {
			m.SetErrorText(msgLoadFailed)
			break
		}
		p.store.Publish(msg.snap)
		m.SetStatus(msgLoaded)
		cmd = p.resolveIcons(msg.snap)
	case iconsResolvedMsg:
		for name, ic := range msg.icons {
			p.icons[name] = ic
		}
	case core.NavigateMsg:
		cmd = p.navigate(msg.Section)
	case core.SubmitMsg:
		cmd = p.submit()
	case submitDoneMsg:
		cmd = p.finishSubmit(msg.err)
	case resetMsg:
		if msg.fired {
			p.deps.Pipeline.Expire(msg.ticket)
		}
	case scrollFrameMsg:
		cmd = p.stepScroll(msg.seq)
	case tea.MouseMsg:
		cmd = p.mouse(m, msg)
	case tea.KeyMsg:
		cmd = p.key(m, msg)
	default:
		cmd = p.updateField(msg)
	}
	p.relayout()
	return cmd
}

func (p *Page) key(m *core.Model, msg tea.KeyMsg) tea.Cmd {
	keys, scope := m.Keys(), p.Scope()
	if p.CapturingInput() {
		switch {
		case keys.IsAction(msg, "focus-next", scope):
			return p.moveFocus(1)
		case keys.IsAction(msg, "focus-prev", scope):
			return p.moveFocus(-1)
		case keys.IsAction(msg, "submit", scope):
			return p.submit()
		case msg.Type == tea.KeyEsc:
			p.clearFocus()
			return nil
		case msg.Type == tea.KeyEnter && contact.Field(p.focus.index) != contact.FieldMessage:
			return p.moveFocus(1)
		}
		return p.updateField(msg)
	}

	switch {
	case keys.IsAction(msg, "scroll-up", scope):
		p.scrollBy(-1)
	case keys.IsAction(msg, "scroll-down", scope):
		p.scrollBy(1)
	case keys.IsAction(msg, "page-up", scope):
		p.scrollBy(-max(1, p.height-2))
	case keys.IsAction(msg, "page-down", scope):
		p.scrollBy(max(1, p.height-2))
	case keys.IsAction(msg, "top", scope):
		return p.scrollTo(0)
	case keys.IsAction(msg, "bottom", scope):
		return p.scrollTo(p.maxOffset())
	case keys.IsAction(msg, "focus-next", scope):
		return p.moveFocus(1)
	case keys.IsAction(msg, "focus-prev", scope):
		return p.moveFocus(-1)
	case keys.IsAction(msg, "activate", scope):
		return p.activate(m)
	case keys.IsAction(msg, "show-prev", scope):
		p.store.StepTab(-1)
	case keys.IsAction(msg, "show-next", scope):
		p.store.StepTab(1)
	case keys.IsAction(msg, "submit", scope):
		return p.submit()
	case msg.Type == tea.KeyEsc:
		p.clearFocus()
	}
	return nil
}

func (p *Page) mouse(m *core.Model, msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.scrollBy(-wheelStep)
	case tea.MouseButtonWheelDown:
		p.scrollBy(wheelStep)
	case tea.MouseButtonLeft:
		t, ok := p.doc.hitAt(msg.X, msg.Y-core.HeaderRows+p.offset)
		if !ok {
			return nil
		}
		cmd := p.focusOn(t)
		return tea.Batch(cmd, p.activate(m))
	}
	return nil
}

// activate runs the focused element.
func (p *Page) activate(m *core.Model) tea.Cmd {
	if !p.hasFocus {
		return nil
	}
	snap := p.store.Snapshot()
	t := p.focus
	switch t.kind {
	case targetCTA:
		return p.navigate(viewport.Contact)
	case targetShow:
		if t.index < len(snap.Shows) {
			p.store.SelectTab(snap.Shows[t.index].ID)
		}
	case targetEvent:
		if t.index < len(snap.Events) {
			p.eventModal.Open(snap.Events[t.index])
			m.PushScreen(screens.NewEventScreen(&p.eventModal))
		}
	case targetFaq:
		p.faq.Toggle(t.index)
	case targetPerformer:
		if t.index < len(snap.Performers) {
			p.performer.Open(snap.Performers[t.index])
			m.PushScreen(screens.NewPerformerScreen(&p.performer, p.deps.BaseURL))
		}
	case targetGallery:
		if t.index < len(snap.Gallery) {
			img := snap.Gallery[t.index]
			p.image.Show(content.AssetURL(p.deps.BaseURL, img.Image.URL), img.Caption)
			m.PushScreen(screens.NewImageScreen(&p.image))
		}
	case targetSubmit:
		return p.submit()
	}
	return nil
}

func (p *Page) resolveIcons(snap content.Snapshot) tea.Cmd {
	if p.deps.Icons == nil || len(snap.Summaries) == 0 {
		return nil
	}
	names := make([]string, 0, len(snap.Summaries))
	for _, s := range snap.Summaries {
		if _, done := p.icons[s.Icon]; !done && s.Icon != "" {
			names = append(names, s.Icon)
		}
	}
	r, ctx := p.deps.Icons, p.ctx
	return func() tea.Msg {
		out := make(map[string]icon.Icon, len(names))
		for _, name := range names {
			if ic, ok := r.Resolve(ctx, name); ok {
				out[name] = ic
			}
		}
		return iconsResolvedMsg{icons: out}
	}
}

// History loads journaled submissions for the history screen.
func (p *Page) History() (*screens.HistoryScreen, bool) {
	if p.deps.History == nil {
		return nil, false
	}
	ctx, cancel := context.WithTimeout(p.ctx, 2*time.Second)
	defer cancel()
	rows, err := p.deps.History(ctx, historyLimit)
	if err != nil {
		p.log.Error("list submissions", zap.Error(err))
	}
	return screens.NewHistoryScreen(rows, err), true
}
