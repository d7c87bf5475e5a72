package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Widgets), h.Ratios)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// Grid lays widgets out in rows of at most cols, each row cellHeight tall.
type Grid struct {
	Widgets    []Widget
	Cols       int
	Gap        int
	CellHeight int
}

func (g Grid) Render(width, height int) string {
	if len(g.Widgets) == 0 || width <= 0 {
		return ""
	}
	cols := max(1, g.Cols)
	rows := make([]string, 0, (len(g.Widgets)+cols-1)/cols)
	for start := 0; start < len(g.Widgets); start += cols {
		end := min(start+cols, len(g.Widgets))
		row := make([]Widget, 0, cols)
		row = append(row, g.Widgets[start:end]...)
		for len(row) < cols {
			row = append(row, Blank{})
		}
		rows = append(rows, HStack{Widgets: row, Gap: g.Gap}.Render(width, g.CellHeight))
	}
	return strings.Join(rows, "\n")
}

// Blank renders empty space.
type Blank struct{}

func (Blank) Render(width, height int) string {
	if height <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", max(0, width))+"\n", height), "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
