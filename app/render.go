package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/richtext"
	"github.com/aurenox/aurenox/internal/viewport"
	"github.com/aurenox/aurenox/widgets"
)

var (
	colorAccent = lipgloss.Color("#d4a857")
	colorMuted  = lipgloss.Color("#9c9488")
	colorOK     = lipgloss.Color("#8fbf7f")
	colorDark   = lipgloss.Color("#120f17")

	titleStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	focusStyle    = lipgloss.NewStyle().Foreground(colorDark).Background(colorAccent)
	tabStyle      = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	tabOnStyle    = lipgloss.NewStyle().Foreground(colorDark).Background(colorAccent).Bold(true).Padding(0, 1)
	buttonStyle   = lipgloss.NewStyle().Foreground(colorDark).Background(colorAccent).Bold(true).Padding(0, 2)
	buttonOff     = lipgloss.NewStyle().Foreground(colorMuted).Background(lipgloss.Color("#3a3442")).Padding(0, 2)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e07a6e"))
	successStyle  = lipgloss.NewStyle().Foreground(colorOK)
	fieldStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#4a4453"))
	fieldOnStyle  = fieldStyle.BorderForeground(colorAccent)
	focusedMarker = titleStyle.Render("›") + " "
)

const tagline = "Nové jméno, známé tváře. Přinášíme vám jedinečnou kombinaci umění, ohně a světla."

// document is the laid out page: its lines, the anchor boxes and the clickable
// regions, all in document line coordinates.
type document struct {
	lines   []string
	boxes   map[viewport.Section]viewport.Box
	hits    []hit
	targets []target
}

type hit struct {
	line   int
	x0, x1 int
	t      target
}

func (d document) window(offset, height int) string {
	if height <= 0 {
		return ""
	}
	end := min(offset+height, len(d.lines))
	start := min(max(offset, 0), end)
	return strings.Join(d.lines[start:end], "\n")
}

func (d document) hitAt(x, line int) (target, bool) {
	for _, h := range d.hits {
		if h.line == line && x >= h.x0 && x < h.x1 {
			return h.t, true
		}
	}
	return target{}, false
}

func (d document) lineOf(t target) (int, bool) {
	for _, h := range d.hits {
		if h.t == t {
			return h.line, true
		}
	}
	return 0, false
}

func (d document) has(t target) bool {
	for _, x := range d.targets {
		if x == t {
			return true
		}
	}
	return false
}

type builder struct {
	doc   document
	width int
}

func (b *builder) add(s string) {
	b.doc.lines = append(b.doc.lines, strings.Split(s, "\n")...)
}

func (b *builder) blank(n int) {
	for range n {
		b.doc.lines = append(b.doc.lines, "")
	}
}

// target adds s as one focusable element spanning the full width.
func (b *builder) target(t target, s string) {
	start := len(b.doc.lines)
	b.add(s)
	for i := start; i < len(b.doc.lines); i++ {
		b.doc.hits = append(b.doc.hits, hit{line: i, x0: 0, x1: b.width, t: t})
	}
	b.doc.targets = append(b.doc.targets, t)
}

// inline adds several targets on one line separated by sep.
func (b *builder) inline(parts []string, ts []target, sep string) {
	line := len(b.doc.lines)
	x := 0
	for i, part := range parts {
		w := ansi.StringWidth(part)
		b.doc.hits = append(b.doc.hits, hit{line: line, x0: x, x1: x + w, t: ts[i]})
		b.doc.targets = append(b.doc.targets, ts[i])
		x += w + ansi.StringWidth(sep)
	}
	b.add(strings.Join(parts, sep))
}

func (b *builder) section(s viewport.Section, fn func()) {
	start := len(b.doc.lines)
	fn()
	b.doc.boxes[s] = viewport.Box{Top: start, Bottom: len(b.doc.lines) - 1}
}

func (b *builder) heading(text string) {
	b.blank(1)
	b.add(titleStyle.Render(text))
	b.add(mutedStyle.Render(strings.Repeat("─", min(b.width, ansi.StringWidth(text)+4))))
	b.blank(1)
}

func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// relayout renders the whole document for the current width and state.
func (p *Page) relayout() {
	b := &builder{width: max(1, p.width), doc: document{boxes: map[viewport.Section]viewport.Box{}}}
	snap := p.store.Snapshot()
	b.section(viewport.Home, func() { p.renderHome(b) })
	b.section(viewport.About, func() { p.renderAbout(b, snap) })
	b.section(viewport.Performances, func() { p.renderShows(b, snap) })
	p.renderEvents(b, snap)
	p.renderFaq(b, snap)
	b.section(viewport.Hero, func() { p.renderPerformers(b, snap) })
	b.section(viewport.Gallery, func() { p.renderGallery(b, snap) })
	b.section(viewport.Contact, func() {
		start := len(b.doc.lines)
		p.renderContact(b)
		for len(b.doc.lines)-start < p.height {
			b.blank(1)
		}
	})
	p.doc = b.doc
	if p.hasFocus && !p.doc.has(p.focus) {
		p.clearFocus()
	}
	if p.offset > p.maxOffset() {
		p.offset = p.maxOffset()
	}
}

func (p *Page) textWidth() int { return max(10, min(p.width-2, 96)) }

func (p *Page) item(t target, text string) string {
	if p.focused(t) {
		return focusedMarker + focusStyle.Render(text)
	}
	return "  " + text
}

func (p *Page) renderHome(b *builder) {
	w := b.width
	center := func(s string) string { return lipgloss.PlaceHorizontal(w, lipgloss.Center, s) }
	b.blank(2)
	b.add(center(titleStyle.Render("A U R E   N O X")))
	b.blank(1)
	b.add(center(lipgloss.NewStyle().Width(min(w, 60)).Align(lipgloss.Center).Render(tagline)))
	b.blank(1)
	cta := buttonStyle.Render("Rezervujte si vystoupení")
	if p.focused(target{kind: targetCTA}) {
		cta = focusedMarker + cta
	}
	b.target(target{kind: targetCTA}, center(cta))
	b.blank(2)
}

func (p *Page) loadingLine(b *builder, empty string) {
	if !p.store.Loaded() {
		b.add(mutedStyle.Render("  Načítám…"))
		return
	}
	b.add(mutedStyle.Render("  " + empty))
}

func (p *Page) renderAbout(b *builder, snap content.Snapshot) {
	tw := p.textWidth()
	if len(snap.About) == 0 {
		b.heading(viewport.About.Label())
		p.loadingLine(b, "Zatím tu nic není.")
	}
	for _, a := range snap.About {
		b.heading(a.Title)
		b.add(indent(wrap(richtext.Plain(a.Body), tw-2), 2))
	}
	if len(snap.Summaries) == 0 {
		return
	}
	b.blank(1)
	cols := 3
	switch {
	case b.width < 60:
		cols = 1
	case b.width < 90:
		cols = 2
	}
	const gap = 2
	inner := max(1, (b.width-gap*(cols-1))/cols-4)
	cards := make([]widgets.Widget, 0, len(snap.Summaries))
	tallest := 1
	for _, s := range snap.Summaries {
		title := s.Title
		if ic, ok := p.icons[s.Icon]; ok {
			title = ic.Glyph + " " + title
		}
		body := wrap(richtext.Plain(s.Description), inner)
		tallest = max(tallest, 1+lipgloss.Height(body))
		cards = append(cards, widgets.Box{Title: title, Content: body})
	}
	b.add(widgets.Grid{Widgets: cards, Cols: cols, Gap: gap, CellHeight: tallest + 2}.Render(b.width, 0))
}

func (p *Page) renderShows(b *builder, snap content.Snapshot) {
	b.heading("Naše vystoupení")
	if len(snap.Shows) == 0 {
		p.loadingLine(b, "Zatím žádná vystoupení.")
		return
	}
	active, _ := p.store.ActiveTab()
	parts := make([]string, 0, len(snap.Shows))
	ts := make([]target, 0, len(snap.Shows))
	for i, sh := range snap.Shows {
		t := target{kind: targetShow, index: i}
		style := tabStyle
		if sh.ID == active {
			style = tabOnStyle
		}
		if p.focused(t) {
			style = style.Underline(true)
		}
		parts = append(parts, style.Render(sh.Title))
		ts = append(ts, t)
	}
	b.inline(parts, ts, " ")
	sh, ok := snap.Show(active)
	if !ok {
		return
	}
	tw := p.textWidth()
	b.blank(1)
	b.add(indent(headingStyle.Render(sh.Title), 2))
	b.add(indent(wrap(richtext.Plain(sh.Description), tw-2), 2))
	if sh.Image.URL != "" {
		b.add(indent(mutedStyle.Render("Obrázek: "+content.AssetURL(p.deps.BaseURL, sh.Image.URL)), 2))
	}
}

func (p *Page) renderEvents(b *builder, snap content.Snapshot) {
	b.heading("Nadcházející akce")
	if len(snap.Events) == 0 {
		p.loadingLine(b, "Žádné plánované akce.")
		return
	}
	for i, e := range snap.Events {
		t := target{kind: targetEvent, index: i}
		b.target(t, p.item(t, headingStyle.Render(e.Name))+"  "+mutedStyle.Render(strings.Trim(e.Date+" · "+e.Place, " ·")))
	}
}

func (p *Page) renderFaq(b *builder, snap content.Snapshot) {
	b.heading("Často kladené otázky")
	if len(snap.Faqs) == 0 {
		p.loadingLine(b, "Žádné otázky.")
		return
	}
	tw := p.textWidth()
	for i, f := range snap.Faqs {
		t := target{kind: targetFaq, index: i}
		marker := "▸ "
		if p.faq.IsOpen(i) {
			marker = "▾ "
		}
		b.target(t, p.item(t, marker+f.Question))
		if p.faq.IsOpen(i) {
			b.add(indent(mutedStyle.Render(wrap(richtext.Plain(f.Answer), tw-6)), 6))
		}
	}
}

func (p *Page) renderPerformers(b *builder, snap content.Snapshot) {
	b.heading(viewport.Hero.Label())
	if len(snap.Performers) == 0 {
		p.loadingLine(b, "Zatím nikdo.")
		return
	}
	for i, perf := range snap.Performers {
		t := target{kind: targetPerformer, index: i}
		line := p.item(t, "★ "+perf.Name)
		if perf.Role != "" {
			line += "  " + mutedStyle.Render(perf.Role)
		}
		b.target(t, line)
	}
}

func (p *Page) renderGallery(b *builder, snap content.Snapshot) {
	b.heading(viewport.Gallery.Label())
	if len(snap.Gallery) == 0 {
		p.loadingLine(b, "Galerie je prázdná.")
		return
	}
	for i, img := range snap.Gallery {
		t := target{kind: targetGallery, index: i}
		caption := img.Caption
		if caption == "" {
			caption = fmt.Sprintf("Obrázek %d", i+1)
		}
		b.target(t, p.item(t, "🖼  "+caption))
	}
}

var contactInfo = []string{
	"Informace o spolku: Aure Nox z.s., IČ: 22000496",
	"Adresa sídla: Družstevní 302/34, 58901 Třešť",
	"Web: www.aurenox.cz",
	"Email: info@aurenox.cz",
}

var founders = []string{"Zbyněk Skácel", "Lucie Čudová", "Hana Zeithamová"}

func (p *Page) renderContact(b *builder) {
	b.heading(viewport.Contact.Label())
	b.add(headingStyle.Render("  Spojte se s námi"))
	b.blank(1)

	boxW := min(p.textWidth(), 64)
	p.name.Width = max(1, boxW-3)
	p.email.Width = max(1, boxW-3)
	p.message.SetWidth(max(1, boxW-2))

	p.field(b, contact.FieldName, "Jméno", p.name.View(), boxW)
	p.field(b, contact.FieldEmail, "Email", p.email.View(), boxW)
	p.field(b, contact.FieldMessage, "Zpráva", p.message.View(), boxW)

	st := p.deps.Pipeline.Status()
	label, style := contact.LabelSubmit, buttonStyle
	if st.Submitting {
		label, style = contact.LabelSubmitting, buttonOff
	}
	btn := style.Render(label)
	t := target{kind: targetSubmit}
	if p.focused(t) {
		btn = focusedMarker + btn
	} else {
		btn = "  " + btn
	}
	b.target(t, btn)
	switch {
	case st.Err != "":
		b.add("  " + errorStyle.Render(st.Err))
	case st.Success:
		b.add("  " + successStyle.Render(contact.MsgSent))
	default:
		b.blank(1)
	}

	b.blank(1)
	b.add(headingStyle.Render("  Kontaktní informace"))
	info := widgets.List{Items: contactInfo, NoMarker: true}.Lines(max(1, b.width-2))
	b.add(indent(strings.Join(info, "\n"), 2))
	crew := widgets.List{Title: "Zakladatelé spolku:", Items: founders}.Lines(max(1, b.width-4))
	b.add(indent(strings.Join(crew, "\n"), 2))
	b.blank(1)
	b.add(mutedStyle.Render(fmt.Sprintf("  © %d Aure Nox", time.Now().Year())))
}

func (p *Page) field(b *builder, f contact.Field, label, view string, width int) {
	t := target{kind: targetField, index: int(f)}
	style := fieldStyle
	if p.focused(t) {
		style = fieldOnStyle
	}
	b.add("  " + mutedStyle.Render(label))
	b.target(t, indent(style.Width(width-2).Render(view), 2))
}
