package core

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/internal/overlay"
	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/widgets"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.forwardToPage(msg)
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case tea.MouseMsg:
		if top := m.screens.Top(); top != nil {
			return m, m.routeScreenMouse(top, msg)
		}
		return m, m.forwardToPage(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}

		if top := m.screens.Top(); top != nil {
			return m, m.updateTop(top, msg)
		}

		if c, ok := m.page.(InputCapturer); ok && c.CapturingInput() && isTextKey(msg) {
			return m, m.forwardToPage(msg)
		}

		scope := m.ActiveScope()
		if m.keys.IsAction(msg, "quit", scope) {
			return m, m.quit()
		}
		if m.keys.IsAction(msg, "open-command-palette", scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		if m.keys.IsAction(msg, "toggle-menu", scope) && m.OpenDrawer != nil {
			m.screens.Push(m.OpenDrawer(&m))
			return m, nil
		}
		if m.keys.IsAction(msg, "open-history", scope) && m.OpenHistory != nil {
			m.screens.Push(m.OpenHistory(&m))
			return m, nil
		}
		if n, ok := strings.CutPrefix(m.keys.ActionFor(msg, scope), "navigate-"); ok {
			if i, err := strconv.Atoi(n); err == nil && i >= 1 && i <= len(viewport.Sections) {
				return m, m.forwardToPage(NavigateMsg{Section: viewport.Sections[i-1]})
			}
		}
		return m, m.forwardToPage(msg)
	}

	if top := m.screens.Top(); top != nil {
		if cmd, handled := m.updateTopNonKey(top, msg); handled {
			return m, cmd
		}
	}
	return m, m.forwardToPage(msg)
}

func (m *Model) forwardToPage(msg tea.Msg) tea.Cmd {
	if m.page == nil {
		return nil
	}
	return m.page.Update(m, msg)
}

func (m *Model) updateTop(top Screen, msg tea.Msg) tea.Cmd {
	next, cmd, pop := top.Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	m.screens.Replace(next)
	return cmd
}

// updateTopNonKey lets a screen see non-input messages (cursor blink, async
// results addressed to it). Anything else falls through to the page.
func (m *Model) updateTopNonKey(top Screen, msg tea.Msg) (tea.Cmd, bool) {
	r, ok := top.(interface{ Receives(tea.Msg) bool })
	if !ok || !r.Receives(msg) {
		return nil, false
	}
	return m.updateTop(top, msg), true
}

func (m *Model) routeScreenMouse(top Screen, msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m.updateTop(top, msg)
	}
	bw, bh := m.BodySize()
	rect := widgets.PopupRect(m.popupView(top), bw, bh)
	rect.Y += HeaderRows
	backdrop := overlay.Backdrop{Content: rect, Target: screenCloser{m: m}}
	if backdrop.Click(msg.X, msg.Y) {
		return nil
	}
	return m.updateTop(top, msg)
}

func (m Model) popupView(top Screen) string {
	return top.View(max(20, m.width-12), max(8, m.height-8))
}

// screenCloser closes the top screen on a backdrop click.
type screenCloser struct{ m *Model }

func (c screenCloser) Close() {
	s := c.m.screens.Pop()
	if d, ok := s.(Dismisser); ok {
		d.Dismiss()
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.screens.Drain()
	if m.page != nil {
		m.page.Dispose()
	}
	return tea.Quit
}

func isTextKey(msg tea.KeyMsg) bool {
	return msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace
}
