package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/internal/viewport"
)

// StatusMsg replaces the status bar text.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// CommandExecuteMsg runs a registered command by ID.
type CommandExecuteMsg struct {
	CommandID string
}

// NavigateMsg asks the page to scroll to a section.
type NavigateMsg struct {
	Section viewport.Section
}

// SubmitMsg asks the page to submit the contact form.
type SubmitMsg struct{}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func NavigateCmd(s viewport.Section) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Section: s} }
}
