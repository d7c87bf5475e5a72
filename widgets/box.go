package widgets

import "github.com/charmbracelet/lipgloss"

var (
	boxBorder        = lipgloss.Color("#4a4453")
	boxFocusedBorder = lipgloss.Color("#d4a857")
)

// Box is a bordered card. Focused boxes get the accent border.
type Box struct {
	Title   string
	Content string
	Focused bool
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	border := boxBorder
	if b.Focused {
		border = boxFocusedBorder
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		MaxHeight(height)
	body := b.Content
	if b.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Render(b.Title) + "\n" + body
	}
	return style.Render(body)
}
