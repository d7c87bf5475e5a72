package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/screens"
)

// NewModel hosts page in a core model with its screens and commands wired.
func NewModel(page *Page, keys *core.KeyRegistry, breakpoint int) core.Model {
	m := core.NewModel(page, keys, core.NewCommandRegistry(nil), breakpoint)
	ConfigureModel(&m, page)
	return m
}

func ConfigureModel(m *core.Model, page *Page) {
	if m == nil {
		return
	}

	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}

	m.OpenDrawer = func(model *core.Model) core.Screen {
		return screens.NewDrawerScreen(page.ActiveSection())
	}

	if page.deps.History != nil {
		m.OpenHistory = func(model *core.Model) core.Screen {
			s, _ := page.History()
			return s
		}
	}

	RegisterCommands(m.CommandRegistry(), page)
}

func RegisterCommands(reg *core.CommandRegistry, page *Page) {
	for _, s := range viewport.Sections {
		reg.Register(core.Command{
			ID:          "nav:" + string(s),
			Name:        "Přejít na " + s.Label(),
			Description: "Posunout stránku na sekci",
			Scopes:      []string{"page"},
			Execute: func(m *core.Model) tea.Cmd {
				return core.NavigateCmd(s)
			},
		})
	}
	reg.Register(core.Command{
		ID:          "contact:submit",
		Name:        "Odeslat zprávu",
		Description: "Odeslat kontaktní formulář",
		Scopes:      []string{"page"},
		Execute: func(m *core.Model) tea.Cmd {
			return func() tea.Msg { return core.SubmitMsg{} }
		},
		Disabled: func(m *core.Model) (bool, string) {
			if page.Pipeline().Status().Submitting {
				return true, contact.LabelSubmitting
			}
			return false, ""
		},
	})
	reg.Register(core.Command{
		ID:          "content:reload",
		Name:        "Znovu načíst obsah",
		Description: "Stáhnout všechny sekce ze serveru",
		Scopes:      []string{"page"},
		Execute: func(m *core.Model) tea.Cmd {
			m.SetStatus("Načítám obsah…")
			return page.Reload()
		},
	})
	reg.Register(core.Command{
		ID:          "faq:collapse",
		Name:        "Sbalit otázky",
		Description: "Zavřít otevřenou odpověď",
		Scopes:      []string{"page"},
		Execute: func(m *core.Model) tea.Cmd {
			page.faq.Collapse()
			page.relayout()
			return nil
		},
	})
	reg.Register(core.Command{
		ID:          "contact:history",
		Name:        "Odeslané zprávy",
		Description: "Historie kontaktního formuláře",
		Scopes:      []string{"page"},
		Execute: func(m *core.Model) tea.Cmd {
			if m.OpenHistory != nil {
				m.PushScreen(m.OpenHistory(m))
			}
			return nil
		},
		Disabled: func(m *core.Model) (bool, string) {
			if m.OpenHistory == nil {
				return true, "deník je vypnutý"
			}
			return false, ""
		},
	})
}
