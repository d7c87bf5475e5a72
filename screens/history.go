package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/database/repository"
)

var outcomeLabels = map[string]string{
	"sent":     "odesláno",
	"rejected": "odmítnuto",
	"failed":   "chyba spojení",
}

// HistoryScreen lists journaled contact-form submissions, newest first.
type HistoryScreen struct {
	table table.Model
	rows  []repository.Submission
	err   error
}

func NewHistoryScreen(rows []repository.Submission, err error) *HistoryScreen {
	cols := []table.Column{
		{Title: "Kdy", Width: 16},
		{Title: "Jméno", Width: 16},
		{Title: "Email", Width: 22},
		{Title: "Výsledek", Width: 14},
	}
	tr := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		outcome := outcomeLabels[r.Outcome]
		if outcome == "" {
			outcome = r.Outcome
		}
		tr = append(tr, table.Row{r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Name, r.Email, outcome})
	}
	t := table.New(table.WithColumns(cols), table.WithRows(tr), table.WithFocused(true), table.WithHeight(min(len(tr)+1, 12)))
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(lipgloss.Color("#d4a857"))
	st.Selected = st.Selected.Foreground(lipgloss.Color("#120f17")).Background(lipgloss.Color("#d4a857"))
	t.SetStyles(st)
	return &HistoryScreen{table: t, rows: rows, err: err}
}

func (s *HistoryScreen) Title() string { return "Odeslané zprávy" }
func (s *HistoryScreen) Scope() string { return "screen:history" }

func (s *HistoryScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "h", "q":
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd, false
}

// Selected returns the highlighted submission.
func (s *HistoryScreen) Selected() (repository.Submission, bool) {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.rows) {
		return repository.Submission{}, false
	}
	return s.rows[i], true
}

func (s *HistoryScreen) View(width, height int) string {
	lines := []string{detailTitleStyle.Render(s.Title()), ""}
	switch {
	case s.err != nil:
		lines = append(lines, "Historii nelze načíst: "+s.err.Error())
	case len(s.rows) == 0:
		lines = append(lines, "Zatím nebyla odeslána žádná zpráva.")
	default:
		lines = append(lines, s.table.View())
		if sel, ok := s.Selected(); ok {
			msg := sel.Message
			if sel.Detail != "" {
				msg += "\n" + detailMetaStyle.Render(sel.Detail)
			}
			lines = append(lines, "", wrap(msg, min(width, 70)))
		}
	}
	lines = append(lines, "", detailHintStyle.Render("↑/↓ procházet. Esc zavřít."))
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
