package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/database/repository"
	"github.com/aurenox/aurenox/internal/icon"
	"github.com/aurenox/aurenox/internal/logging"
	"github.com/aurenox/aurenox/internal/overlay"
	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/widgets"
)

const (
	frameInterval = 16 * time.Millisecond
	wheelStep     = 3
	historyLimit  = 50

	msgLoadFailed = "Obsah se nepodařilo načíst"
	msgLoaded     = "Obsah načten"
)

// Loader fetches every content collection as one snapshot.
type Loader interface {
	Load(ctx context.Context) (content.Snapshot, error)
}

// HistoryFunc lists journaled submissions, newest first.
type HistoryFunc func(ctx context.Context, limit int) ([]repository.Submission, error)

// Deps are the services a page runs on. Pipeline and Loader are required.
type Deps struct {
	Loader     Loader
	Pipeline   *contact.Pipeline
	Icons      *icon.Resolver
	BaseURL    string
	Threshold  int
	ScrollStep int
	History    HistoryFunc
	Log        *zap.Logger
}

// Page is the single scrollable document: every section of the site, the show
// tabs, the FAQ accordion and the contact form.
type Page struct {
	deps   Deps
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc

	store   content.Store
	icons   map[string]icon.Icon
	loading bool

	tracker *viewport.Tracker
	events  viewport.Events

	faq        overlay.Accordion
	eventModal overlay.Modal[content.EventEntry]
	performer  overlay.Modal[content.HeroPerformer]
	image      overlay.ImageModal

	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focus    target
	hasFocus bool

	doc      document
	width    int
	height   int
	offset   int
	anim     scrollAnim
	disposed bool
}

func NewPage(deps Deps) *Page {
	if deps.ScrollStep <= 0 {
		deps.ScrollStep = 2
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Page{
		deps:    deps,
		log:     logging.OrNop(deps.Log),
		ctx:     ctx,
		cancel:  cancel,
		icons:   map[string]icon.Icon{},
		tracker: viewport.NewTracker(viewport.Sections, deps.Threshold, viewport.Home),
		name:    newInput("Vaše jméno"),
		email:   newInput("Váš email"),
		message: newMessageArea(),
	}
	p.tracker.Attach(&p.events, viewport.GeometryFunc(p.viewBox))
	return p
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 120
	return in
}

func newMessageArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Vaše zpráva"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 4000
	ta.SetHeight(4)
	return ta
}

func (p *Page) Scope() string { return "page" }

func (p *Page) ActiveSection() viewport.Section { return p.tracker.Active() }

// CapturingInput reports whether a form field has focus.
func (p *Page) CapturingInput() bool {
	return p.hasFocus && p.focus.kind == targetField
}

// Snapshot returns the published content.
func (p *Page) Snapshot() content.Snapshot { return p.store.Snapshot() }

// Offset returns the first visible document line.
func (p *Page) Offset() int { return p.offset }

// Pipeline returns the contact pipeline.
func (p *Page) Pipeline() *contact.Pipeline { return p.deps.Pipeline }

func (p *Page) Init(m *core.Model) tea.Cmd {
	p.width, p.height = m.BodySize()
	p.relayout()
	return p.Reload()
}

// Reload fetches all collections again. A failed load keeps the last snapshot.
func (p *Page) Reload() tea.Cmd {
	if p.loading || p.disposed || p.deps.Loader == nil {
		return nil
	}
	p.loading = true
	loader, ctx := p.deps.Loader, p.ctx
	return func() tea.Msg {
		snap, err := loader.Load(ctx)
		return contentLoadedMsg{snap: snap, err: err}
	}
}

// Dispose detaches the scroll subscription and cancels pending work.
func (p *Page) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.anim.active = false
	p.tracker.Detach()
	p.deps.Pipeline.Dispose()
	p.cancel()
}

func (p *Page) Build(m *core.Model) widgets.Widget {
	return pageView{p: p}
}

// pageView renders the visible slice of the document.
type pageView struct{ p *Page }

func (v pageView) Render(width, height int) string {
	p := v.p
	if width != p.width || height != p.height {
		p.width, p.height = width, height
		p.relayout()
	}
	return p.doc.window(p.offset, height)
}
