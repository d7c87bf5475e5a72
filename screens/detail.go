package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/overlay"
	"github.com/aurenox/aurenox/internal/richtext"
)

var (
	detailTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4a857")).Bold(true)
	detailMetaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9c9488"))
	detailHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6f6878")).Italic(true)
)

// DetailScreen shows the record selected in a modal. Closing the screen closes
// the modal, so the modal state and the screen stack cannot disagree.
type DetailScreen[T any] struct {
	title  string
	scope  string
	modal  *overlay.Modal[T]
	render func(v T, width int) string
}

func NewDetailScreen[T any](title, scope string, modal *overlay.Modal[T], render func(T, int) string) *DetailScreen[T] {
	return &DetailScreen[T]{title: title, scope: scope, modal: modal, render: render}
}

func (s *DetailScreen[T]) Title() string { return s.title }
func (s *DetailScreen[T]) Scope() string { return s.scope }

// Dismiss closes the modal after a backdrop click.
func (s *DetailScreen[T]) Dismiss() { s.modal.Close() }

func (s *DetailScreen[T]) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "enter", "q":
			s.modal.Close()
			return s, nil, true
		}
	}
	return s, nil, false
}

func (s *DetailScreen[T]) View(width, height int) string {
	v, ok := s.modal.Selected()
	if !ok {
		return ""
	}
	w := min(width, 72)
	body := s.render(v, w)
	return core.ClipHeight(body+"\n\n"+detailHintStyle.Render("Esc zavřít"), max(6, height))
}

// NewEventScreen shows the selected event.
func NewEventScreen(modal *overlay.Modal[content.EventEntry]) *DetailScreen[content.EventEntry] {
	return NewDetailScreen("Akce", "screen:event", modal, func(e content.EventEntry, width int) string {
		lines := []string{
			detailTitleStyle.Render(e.Name),
			detailMetaStyle.Render(strings.TrimSpace(e.Date + "  " + e.Place)),
			"",
			wrap(richtext.Plain(e.Description), width),
		}
		return strings.Join(lines, "\n")
	})
}

// NewPerformerScreen shows the selected performer. base resolves the portrait URL.
func NewPerformerScreen(modal *overlay.Modal[content.HeroPerformer], base string) *DetailScreen[content.HeroPerformer] {
	return NewDetailScreen("Účinkující", "screen:performer", modal, func(p content.HeroPerformer, width int) string {
		lines := []string{detailTitleStyle.Render(p.Name)}
		if p.Role != "" {
			lines = append(lines, detailMetaStyle.Render(p.Role))
		}
		lines = append(lines, "", wrap(richtext.Plain(p.Description), width))
		if p.Image.URL != "" {
			lines = append(lines, "", detailMetaStyle.Render(content.AssetURL(base, p.Image.URL)))
		}
		return strings.Join(lines, "\n")
	})
}

// NewImageScreen shows the selected gallery image's address and caption.
func NewImageScreen(modal *overlay.ImageModal) *DetailScreen[overlay.Image] {
	return NewDetailScreen("Galerie", "screen:image", &modal.Modal, func(img overlay.Image, width int) string {
		lines := []string{detailMetaStyle.Render("🖼  " + img.URL)}
		if img.Caption != "" {
			lines = append(lines, "", wrap(img.Caption, width))
		}
		return strings.Join(lines, "\n")
	})
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}
