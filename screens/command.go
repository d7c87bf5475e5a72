package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aurenox/aurenox/core"
)

// CommandOption is one palette row. IDs are "<group>:<name>".
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

var commandGroups = map[string]string{
	"nav":     "Navigace",
	"contact": "Kontakt",
	"content": "Obsah",
	"faq":     "FAQ",
}

// Group returns the display label for the option's ID prefix.
func (i CommandOption) Group() string {
	prefix, _, _ := strings.Cut(i.ID, ":")
	if g, ok := commandGroups[prefix]; ok {
		return g
	}
	return prefix
}

func (i CommandOption) Title() string {
	if i.Disabled && i.Reason != "" {
		return fmt.Sprintf("%s (%s)", i.Name, i.Reason)
	}
	return i.Name
}

func (i CommandOption) Description() string {
	if i.Desc == "" {
		return i.Group()
	}
	return i.Group() + " · " + i.Desc
}

func (i CommandOption) FilterValue() string { return i.Name + " " + i.Desc + " " + i.ID }

// CommandScreen is the ctrl+k palette. Typing re-runs search and moves the
// cursor back to the best match.
type CommandScreen struct {
	scope    string
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
	query    string
	count    int
}

func NewCommandScreen(scope string, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = "Hledat příkaz"
	inp.Prompt = "› "
	inp.Focus()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#d4a857")).BorderForeground(lipgloss.Color("#d4a857"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#9c9488")).BorderForeground(lipgloss.Color("#d4a857"))

	lst := list.New(nil, delegate, 64, 14)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{scope: scope, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return "Příkazy" }
func (s *CommandScreen) Scope() string { return "screen:command" }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, false
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect == nil {
				return s, nil, true
			}
			id := it.ID
			return s, func() tea.Msg { return s.onSelect(id) }, true
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			return s, cmd, false
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if q := strings.TrimSpace(s.input.Value()); q != s.query {
		s.query = q
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	items := s.search(s.query)
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
	s.count = len(ls)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(width)
	s.list.SetHeight(max(6, height-4))
	header := fmt.Sprintf("%s  %d", s.Title(), s.count)
	body := s.list.View()
	if s.count == 0 {
		body = "Žádný příkaz neodpovídá"
	}
	return header + "\n" + s.input.View() + "\n" + body
}
