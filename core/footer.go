package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// footerHints turns the scope's bindings into help entries. The six
// navigate-N bindings collapse into a single range hint.
func footerHints(bindings []KeyBinding) []key.Help {
	out := make([]key.Help, 0, len(bindings))
	var navKeys []string
	navAt := -1
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		if strings.HasPrefix(b.Action, "navigate-") {
			if navAt < 0 {
				navAt = len(out)
				out = append(out, key.Help{})
			}
			navKeys = append(navKeys, b.Keys[0])
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(strings.Join(b.Keys, "/"), b.Description))
		out = append(out, kb.Help())
	}
	if navAt >= 0 {
		k := navKeys[0]
		if len(navKeys) > 1 {
			k += "-" + navKeys[len(navKeys)-1]
		}
		out[navAt] = key.Help{Key: k, Desc: "sekce"}
	}
	return out
}

// RenderFooter draws as many whole hints as fit the width.
func RenderFooter(m Model) string {
	width := max(1, m.width)
	bg := colorNight
	keyStyle := lipgloss.NewStyle().Foreground(colorGold).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorFaded).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	var b strings.Builder
	used := 0
	for _, h := range footerHints(m.keys.BindingsForScope(m.ActiveScope())) {
		part := keyStyle.Render(h.Key) + space + descStyle.Render(h.Desc)
		w := ansi.StringWidth(part)
		if used > 0 {
			w += 2
		}
		if used+w > width-2 {
			break
		}
		if used > 0 {
			b.WriteString(sep)
		}
		b.WriteString(part)
		used += w
	}
	line := b.String()
	if line == "" {
		line = descStyle.Render("Žádné zkratky")
	}
	return renderBar(footerStyle, width, line, bg)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	style := statusBarStyle
	switch {
	case m.statusErr:
		style = statusErrBarStyle
		msg = "✗ " + msg
	case msg == "":
		msg = "Připraveno"
	}
	return renderBar(style, max(1, m.width), msg, colorDusk)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "…")
	if pad := width - ansi.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(line)
}

// ClipHeight keeps the first height lines of s.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	return strings.Join(lines[:min(len(lines), height)], "\n")
}
