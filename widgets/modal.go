package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aurenox/aurenox/internal/overlay"
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#d4a857")).
	Padding(1, 2)

// RenderPopup centers popup, framed as a card, on top of base.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	card := cardStyle.Render(popup)
	r := placeCard(card, width, height)
	if r.Empty() {
		return baseCanvas
	}
	return overlayAt(baseCanvas, card, r.X, r.Y, width, height)
}

// PopupRect returns where RenderPopup draws popup's card, relative to the canvas.
func PopupRect(popup string, width, height int) overlay.Rect {
	if width <= 0 || height <= 0 {
		return overlay.Rect{}
	}
	return placeCard(cardStyle.Render(popup), width, height)
}

func placeCard(card string, width, height int) overlay.Rect {
	lines := splitToLines(card, 0)
	w := maxLineWidth(lines)
	h := len(lines)
	if w <= 0 || h <= 0 {
		return overlay.Rect{}
	}
	x := max(0, (width-w)/2)
	y := max(0, (height-h)/2)
	return overlay.Rect{X: x, Y: y, W: min(w, width-x), H: min(h, height-y)}
}

func overlayAt(base, over string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overLines := splitToLines(over, 0)
	overWidth := maxLineWidth(overLines)
	for i, line := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if lw := ansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
		overLine := padRight(line, overWidth)
		pos := x + ansi.StringWidth(overLine)
		right := dropColumns(target, pos)
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		baseLines[row] = ansi.Truncate(left+overLine+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}
