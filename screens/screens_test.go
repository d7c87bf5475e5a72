package screens

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/database/repository"
	"github.com/aurenox/aurenox/internal/overlay"
	"github.com/aurenox/aurenox/internal/viewport"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEventScreenEscClosesModal(t *testing.T) {
	var modal overlay.Modal[content.EventEntry]
	modal.Open(content.EventEntry{Name: "Ohnivá noc", Date: "2026-08-01", Place: "Brno", Description: "**Velká** show"})
	s := NewEventScreen(&modal)

	view := s.View(80, 20)
	if !strings.Contains(view, "Ohnivá noc") || !strings.Contains(view, "Velká show") {
		t.Fatalf("event view missing fields: %q", view)
	}
	_, _, pop := s.Update(key("esc"))
	if !pop || modal.IsOpen() {
		t.Fatalf("esc should pop the screen and close the modal")
	}
}

func TestDismissClosesModal(t *testing.T) {
	var modal overlay.ImageModal
	modal.Show("http://cms/uploads/a.jpg", "Plameny")
	s := NewImageScreen(&modal)
	if !strings.Contains(s.View(80, 20), "http://cms/uploads/a.jpg") {
		t.Fatalf("image view should show the resolved url")
	}
	var d core.Dismisser = s
	d.Dismiss()
	if modal.IsOpen() {
		t.Fatalf("dismiss should close the image modal")
	}
	if s.View(80, 20) != "" {
		t.Fatalf("closed modal renders nothing")
	}
}

func TestPerformerScreenResolvesPortrait(t *testing.T) {
	var modal overlay.Modal[content.HeroPerformer]
	modal.Open(content.HeroPerformer{Name: "Lucie", Role: "Fakír", Image: content.Media{URL: "/uploads/l.png"}})
	view := NewPerformerScreen(&modal, "http://cms").View(80, 20)
	if !strings.Contains(view, "http://cms/uploads/l.png") || !strings.Contains(view, "Fakír") {
		t.Fatalf("performer view = %q", view)
	}
}

func TestDrawerSelectNavigates(t *testing.T) {
	s := NewDrawerScreen(viewport.About)
	_, _, pop := s.Update(key("down"))
	if pop {
		t.Fatalf("moving should not close")
	}
	_, cmd, pop := s.Update(key("enter"))
	if !pop || cmd == nil {
		t.Fatalf("enter should close the drawer and navigate")
	}
	nav, ok := cmd().(core.NavigateMsg)
	if !ok || nav.Section != viewport.Performances {
		t.Fatalf("navigate = %#v, want performances", cmd())
	}
}

func TestDrawerToggleKeyCloses(t *testing.T) {
	_, cmd, pop := NewDrawerScreen(viewport.Home).Update(key("m"))
	if !pop || cmd != nil {
		t.Fatalf("m should close the drawer without navigating")
	}
}

func TestHistoryScreenRendersRows(t *testing.T) {
	rows := []repository.Submission{
		{ID: "b", Name: "Eva", Email: "eva@example.com", Message: "Druhá", Outcome: "failed", Detail: "connection refused", CreatedAt: time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "a", Name: "Jan", Email: "jan@example.com", Message: "První", Outcome: "sent", CreatedAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)},
	}
	s := NewHistoryScreen(rows, nil)
	view := s.View(90, 30)
	if !strings.Contains(view, "chyba spojení") || !strings.Contains(view, "connection refused") {
		t.Fatalf("history view = %q", view)
	}
	s.Update(key("down"))
	if sel, ok := s.Selected(); !ok || sel.ID != "a" {
		t.Fatalf("selected = %+v", sel)
	}
}

func TestHistoryScreenStates(t *testing.T) {
	if !strings.Contains(NewHistoryScreen(nil, nil).View(80, 20), "žádná zpráva") {
		t.Fatalf("empty history should say so")
	}
	if !strings.Contains(NewHistoryScreen(nil, errors.New("disk")).View(80, 20), "disk") {
		t.Fatalf("load error should be shown")
	}
}

func TestCommandScreenSelects(t *testing.T) {
	search := func(q string) []CommandOption {
		return []CommandOption{{ID: "nav:contact", Name: "Přejít na Kontakt"}}
	}
	s := NewCommandScreen("page", search, func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} })
	_, cmd, pop := s.Update(key("enter"))
	if !pop || cmd == nil {
		t.Fatalf("enter should select")
	}
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "nav:contact" {
		t.Fatalf("msg = %#v", cmd())
	}
}

func TestCommandScreenRefiltersOnTyping(t *testing.T) {
	all := []CommandOption{
		{ID: "nav:contact", Name: "Přejít na Kontakt"},
		{ID: "content:reload", Name: "Znovu načíst obsah"},
	}
	var queries []string
	search := func(q string) []CommandOption {
		queries = append(queries, q)
		var out []CommandOption
		for _, c := range all {
			if strings.Contains(strings.ToLower(c.Name), q) {
				out = append(out, c)
			}
		}
		return out
	}
	s := NewCommandScreen("page", search, func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} })
	for _, r := range "obsah" {
		s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if queries[len(queries)-1] != "obsah" {
		t.Fatalf("last query = %q", queries[len(queries)-1])
	}
	_, cmd, _ := s.Update(key("enter"))
	if msg, ok := cmd().(core.CommandExecuteMsg); !ok || msg.CommandID != "content:reload" {
		t.Fatalf("msg = %#v", cmd())
	}

	s = NewCommandScreen("page", func(string) []CommandOption { return nil }, nil)
	if !strings.Contains(s.View(60, 20), "Žádný příkaz") {
		t.Fatalf("empty palette should say so")
	}
	if _, _, pop := s.Update(key("enter")); pop {
		t.Fatalf("enter with no match keeps the palette open")
	}
}

func TestCommandOptionGroup(t *testing.T) {
	if g := (CommandOption{ID: "contact:submit"}).Group(); g != "Kontakt" {
		t.Fatalf("group = %q", g)
	}
	if d := (CommandOption{ID: "faq:collapse", Desc: "zavřít"}).Description(); d != "FAQ · zavřít" {
		t.Fatalf("desc = %q", d)
	}
}
