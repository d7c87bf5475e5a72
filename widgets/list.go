package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// List renders items under an optional title. Long items wrap with a hanging
// indent under the marker. Marker defaults to "• "; set NoMarker for plain rows.
type List struct {
	Title    string
	Items    []string
	Marker   string
	NoMarker bool
}

func (l List) marker() string {
	switch {
	case l.NoMarker:
		return ""
	case l.Marker != "":
		return l.Marker
	}
	return "• "
}

// Lines returns every row the list needs at width, before any height cut.
func (l List) Lines(width int) []string {
	if width <= 0 {
		return nil
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, padRight(l.Title, width))
	}
	mark := l.marker()
	hang := strings.Repeat(" ", ansi.StringWidth(mark))
	inner := max(1, width-len(hang))
	for _, item := range l.Items {
		wrapped := strings.Split(ansi.Wordwrap(item, inner, " -"), "\n")
		for i, w := range wrapped {
			prefix := hang
			if i == 0 {
				prefix = mark
			}
			rows = append(rows, padRight(prefix+w, width))
		}
	}
	return rows
}

func (l List) Render(width, height int) string {
	if height <= 0 {
		return ""
	}
	rows := l.Lines(width)
	return strings.Join(rows[:min(len(rows), height)], "\n")
}
