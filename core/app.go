package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/widgets"
)

// Screen is a popup pushed above the page. Update returns pop=true to close it.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

// Dismisser is implemented by screens that own state which must be reset when
// the screen is closed from outside (backdrop click).
type Dismisser interface {
	Dismiss()
}

// Page is the scrollable document under the screen stack.
type Page interface {
	Init(m *Model) tea.Cmd
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model) widgets.Widget
	Scope() string
	ActiveSection() viewport.Section
	Dispose()
}

// InputCapturer pages report whether a text field has focus, in which case
// printable keys go to the page instead of global bindings.
type InputCapturer interface {
	CapturingInput() bool
}

// HeaderRows is the number of lines above the body: header bar and status bar.
const HeaderRows = 2

type Model struct {
	width      int
	height     int
	page       Page
	screens    ScreenStack
	keys       *KeyRegistry
	commands   *CommandRegistry
	status     string
	statusErr  bool
	quitting   bool
	breakpoint int

	OpenCommandModal func(m *Model, scope string) Screen
	OpenDrawer       func(m *Model) Screen
	OpenHistory      func(m *Model) Screen
}

func NewModel(page Page, keys *KeyRegistry, commands *CommandRegistry, breakpoint int) Model {
	return Model{
		page:       page,
		keys:       keys,
		commands:   commands,
		status:     "Načítám obsah…",
		width:      100,
		height:     32,
		breakpoint: breakpoint,
	}
}

func (m Model) Init() tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Init(&m)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// SetErrorText shows msg as an error without an underlying error value.
func (m *Model) SetErrorText(msg string) {
	m.status = msg
	m.statusErr = true
}

// Status returns the status bar text and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if m.page == nil {
		return "app"
	}
	return m.page.Scope()
}

// Compact reports whether the terminal is narrower than the mobile breakpoint.
func (m Model) Compact() bool { return m.width < m.breakpoint }

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

// BodySize returns the cell area available to the page.
func (m Model) BodySize() (int, int) {
	return max(1, m.width-2), max(0, m.height-HeaderRows-1)
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

// Screens returns the number of open screens.
func (m Model) Screens() int { return m.screens.Len() }

// TopScreen returns the screen on top of the stack, if any.
func (m Model) TopScreen() Screen { return m.screens.Top() }

func (m *Model) Keys() *KeyRegistry { return m.keys }

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

// Page returns the hosted page.
func (m Model) Page() Page { return m.page }

// Quitting reports whether quit was requested.
func (m Model) Quitting() bool { return m.quitting }
