package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Na shledanou\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyWidth, bodyHeight := m.BodySize()
	var body string
	if m.page != nil && bodyHeight > 0 {
		body = m.page.Build(&m).Render(bodyWidth, bodyHeight)
	}
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, m.popupView(top), bodyWidth, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	main := strings.Join([]string{header, status, body}, "\n")
	main = fitHeight(main, HeaderRows+bodyHeight)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("AURE NOX")
	var active viewport.Section
	if m.page != nil {
		active = m.page.ActiveSection()
	}
	var right string
	if m.Compact() {
		right = inactiveTabStyle.Render(menuHint(m.keys.HintFor("toggle-menu", m.ActiveScope()))) + tabSepStyle.Render("│") + activeTabStyle.Render(active.Label())
	} else {
		tabs := make([]string, 0, len(viewport.Sections))
		for i, s := range viewport.Sections {
			label := string(rune('1'+i)) + ":" + s.Label()
			if s == active {
				tabs = append(tabs, activeTabStyle.Render(label))
			} else {
				tabs = append(tabs, inactiveTabStyle.Render(label))
			}
		}
		right = tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func menuHint(key string) string {
	if key == "" {
		return "☰ menu"
	}
	return "☰ menu (" + key + ")"
}
