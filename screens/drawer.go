package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/viewport"
)

// DrawerScreen is the navigation menu used on narrow terminals. Choosing a
// section closes the drawer and navigates.
type DrawerScreen struct {
	picker *core.Picker
}

func NewDrawerScreen(active viewport.Section) *DrawerScreen {
	items := make([]core.PickerItem, 0, len(viewport.Sections))
	for _, s := range viewport.Sections {
		items = append(items, core.PickerItem{ID: string(s), Label: s.Label(), Search: s.Label() + " " + string(s)})
	}
	p := core.NewPicker("Menu", items)
	p.SetCursorTo(string(active))
	return &DrawerScreen{picker: p}
}

func (s *DrawerScreen) Title() string { return "Menu" }
func (s *DrawerScreen) Scope() string { return "screen:drawer" }

func (s *DrawerScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	if keyMsg.String() == "m" && s.picker.Query() == "" {
		return s, nil, true
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		return s, nil, true
	case core.PickerActionSelected:
		return s, core.NavigateCmd(viewport.Section(result.Item.ID)), true
	default:
		return s, nil, false
	}
}

func (s *DrawerScreen) View(width, height int) string {
	lines := []string{detailTitleStyle.Render(s.picker.Title())}
	if q := s.picker.Query(); q != "" {
		lines = append(lines, detailMetaStyle.Render("Filtr: "+q))
	}
	lines = append(lines, "")
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  Nic nenalezeno")
	}
	for idx, item := range items {
		prefix := "  "
		if idx == s.picker.Cursor() {
			prefix = "> "
		}
		lines = append(lines, prefix+item.Label)
	}
	lines = append(lines, "", detailHintStyle.Render("Enter přejít. Esc zavřít."))
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
