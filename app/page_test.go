package app

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/aurenox/aurenox/core"
	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/content/contenttest"
	"github.com/aurenox/aurenox/internal/database/repository"
	"github.com/aurenox/aurenox/internal/icon"
	"github.com/aurenox/aurenox/internal/viewport"
)

type harness struct {
	t    *testing.T
	m    core.Model
	page *Page
	srv  *contenttest.Server
}

type harnessOpt func(*Deps, *[]contact.Option)

func withResetDelay(d time.Duration) harnessOpt {
	return func(_ *Deps, opts *[]contact.Option) { *opts = append(*opts, contact.WithResetDelay(d)) }
}

func withHistory(fn HistoryFunc) harnessOpt {
	return func(d *Deps, _ *[]contact.Option) { d.History = fn }
}

func newHarness(t *testing.T, width int, opts ...harnessOpt) *harness {
	t.Helper()
	srv := contenttest.New(t)
	client := content.NewHTTPClient(srv.URL, 2*time.Second, nil)
	deps := Deps{
		Loader:     content.NewAggregator(client, nil),
		Icons:      icon.NewResolver(icon.Embedded, nil),
		BaseURL:    srv.URL,
		Threshold:  3,
		ScrollStep: 2,
	}
	pipeOpts := []contact.Option{contact.WithResetDelay(10 * time.Millisecond)}
	for _, o := range opts {
		o(&deps, &pipeOpts)
	}
	deps.Pipeline = contact.New(client, pipeOpts...)
	page := NewPage(deps)
	t.Cleanup(page.Dispose)

	h := &harness{t: t, m: NewModel(page, core.NewKeyRegistry(core.DefaultKeyBindings()), 80), page: page, srv: srv}
	h.send(tea.WindowSizeMsg{Width: width, Height: 30})
	h.run(h.m.Init())
	return h
}

func (h *harness) send(msg tea.Msg) {
	next, cmd := h.m.Update(msg)
	h.m = next.(core.Model)
	h.run(cmd)
}

// run executes cmd and feeds back the messages the page reacts to. Commands that
// do not answer promptly (cursor blink, long reset timers) are dropped.
func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(150 * time.Millisecond):
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			h.run(c)
		}
		return
	}
	switch msg.(type) {
	case contentLoadedMsg, iconsResolvedMsg, submitDoneMsg, resetMsg, scrollFrameMsg,
		core.NavigateMsg, core.SubmitMsg, core.StatusMsg, core.CommandExecuteMsg:
		h.send(msg)
	}
}

func (h *harness) key(k tea.KeyType) { h.send(tea.KeyMsg{Type: k}) }

func (h *harness) runes(s string) { h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}) }

func (h *harness) click(t target) {
	h.t.Helper()
	line, ok := h.page.doc.lineOf(t)
	require.True(h.t, ok, "target %+v not laid out", t)
	h.page.ensureVisible(line)
	h.send(tea.MouseMsg{X: 3, Y: line - h.page.offset + core.HeaderRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (h *harness) status() (string, bool) { return h.m.Status() }

func TestLoadPublishesSnapshotAndIcons(t *testing.T) {
	h := newHarness(t, 100)

	snap := h.page.Snapshot()
	require.Len(t, snap.Events, 2)
	require.Len(t, snap.Shows, 2)
	text, isErr := h.status()
	require.Equal(t, msgLoaded, text)
	require.False(t, isErr)

	tab, ok := h.page.store.ActiveTab()
	require.True(t, ok)
	require.Equal(t, 7, tab, "first show is selected on first load")

	require.Contains(t, h.page.icons, "Flame")
	require.NotContains(t, h.page.icons, "NoSuchIcon")
	doc := strings.Join(h.page.doc.lines, "\n")
	require.Contains(t, doc, "🔥 Oheň")
	require.Contains(t, doc, "Pyro")
}

func TestLoadFailureKeepsPreviousContent(t *testing.T) {
	h := newHarness(t, 100)
	h.srv.Fail(content.PathFaqs, http.StatusInternalServerError)

	h.run(h.page.Reload())
	text, isErr := h.status()
	require.Equal(t, msgLoadFailed, text)
	require.True(t, isErr)
	require.Equal(t, 1, h.page.store.Publishes(), "failed load publishes nothing")
	require.Len(t, h.page.Snapshot().Faqs, 3)

	h.srv.Heal(content.PathFaqs)
	h.srv.SetCollection(content.PathFaqs, []content.FaqEntry{{ID: 9, Question: "Nová?", Answer: "Ano."}})
	h.run(h.page.Reload())
	require.Equal(t, 2, h.page.store.Publishes())
	require.Len(t, h.page.Snapshot().Faqs, 1)
}

func TestInitialLoadFailureShowsStatus(t *testing.T) {
	srv := contenttest.New(t)
	srv.Fail(content.PathGallery, http.StatusBadGateway)
	client := content.NewHTTPClient(srv.URL, time.Second, nil)
	page := NewPage(Deps{Loader: content.NewAggregator(client, nil), Pipeline: contact.New(client)})
	t.Cleanup(page.Dispose)
	h := &harness{t: t, m: NewModel(page, core.NewKeyRegistry(core.DefaultKeyBindings()), 80), page: page, srv: srv}
	h.run(h.m.Init())

	text, isErr := h.status()
	require.Equal(t, msgLoadFailed, text)
	require.True(t, isErr)
	require.False(t, page.store.Loaded())
}

func TestNavigateScrollsAndTracksSection(t *testing.T) {
	h := newHarness(t, 100)
	require.Equal(t, viewport.Home, h.page.ActiveSection())

	h.runes("5")
	require.Equal(t, viewport.Gallery, h.page.ActiveSection())
	require.Equal(t, h.page.doc.boxes[viewport.Gallery].Top, h.page.Offset())

	h.runes("2")
	require.Equal(t, viewport.About, h.page.ActiveSection())
}

func TestUntrackedRegionKeepsActiveSection(t *testing.T) {
	h := newHarness(t, 100)
	h.runes("3")
	require.Equal(t, viewport.Performances, h.page.ActiveSection())

	// put the threshold line inside the events block, which no anchor covers
	perf := h.page.doc.boxes[viewport.Performances]
	h.page.scrollBy(perf.Bottom + 2 - h.page.tracker.Threshold() - h.page.Offset())
	vb, _ := h.page.viewBox(viewport.Performances)
	require.False(t, vb.Contains(h.page.tracker.Threshold()))
	require.Equal(t, viewport.Performances, h.page.ActiveSection())
}

func TestWheelScrollEmitsScrollEvents(t *testing.T) {
	h := newHarness(t, 100)
	for range 40 {
		h.send(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	}
	require.Greater(t, h.page.Offset(), 0)
	require.NotEqual(t, viewport.Home, h.page.ActiveSection())
}

func TestShowTabsStepAndClick(t *testing.T) {
	h := newHarness(t, 100)
	h.key(tea.KeyRight)
	tab, _ := h.page.store.ActiveTab()
	require.Equal(t, 9, tab)
	h.key(tea.KeyRight)
	tab, _ = h.page.store.ActiveTab()
	require.Equal(t, 9, tab, "clamped at the last show")

	h.click(target{kind: targetShow, index: 0})
	tab, _ = h.page.store.ActiveTab()
	require.Equal(t, 7, tab)
}

func TestFaqAccordionSingleOpen(t *testing.T) {
	h := newHarness(t, 100)
	h.click(target{kind: targetFaq, index: 1})
	require.True(t, h.page.faq.IsOpen(1))

	h.click(target{kind: targetFaq, index: 0})
	require.True(t, h.page.faq.IsOpen(0))
	require.False(t, h.page.faq.IsOpen(1))

	h.key(tea.KeyEnter)
	_, open := h.page.faq.Open()
	require.False(t, open, "activating the open entry closes it")
}

func TestEventModalOpensAndCloses(t *testing.T) {
	h := newHarness(t, 100)
	h.click(target{kind: targetEvent, index: 1})
	require.Equal(t, 1, h.m.Screens())
	ev, ok := h.page.eventModal.Selected()
	require.True(t, ok)
	require.Equal(t, "Světelná show", ev.Name)
	require.Contains(t, h.m.View(), "Jihlava")

	h.key(tea.KeyEsc)
	require.Equal(t, 0, h.m.Screens())
	require.False(t, h.page.eventModal.IsOpen())
}

func TestGalleryBackdropClickClosesImage(t *testing.T) {
	h := newHarness(t, 100)
	h.click(target{kind: targetGallery, index: 0})
	img, ok := h.page.image.Selected()
	require.True(t, ok)
	require.Equal(t, h.srv.URL+"/uploads/g1.jpg", img.URL)
	require.Equal(t, "Ohnivé vějíře", img.Caption)

	h.send(tea.MouseMsg{X: 0, Y: core.HeaderRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, 0, h.m.Screens())
	require.False(t, h.page.image.IsOpen())
}

func TestModalsAreIndependent(t *testing.T) {
	h := newHarness(t, 100)
	h.click(target{kind: targetPerformer, index: 0})
	require.True(t, h.page.performer.IsOpen())
	h.page.eventModal.Open(h.page.Snapshot().Events[0])
	require.True(t, h.page.performer.IsOpen(), "opening one modal leaves the other open")
}

func fillForm(h *harness, name, email, message string) {
	h.click(target{kind: targetField, index: int(contact.FieldName)})
	require.True(h.t, h.page.CapturingInput())
	h.runes(name)
	h.key(tea.KeyTab)
	h.runes(email)
	h.key(tea.KeyTab)
	h.runes(message)
}

func TestSubmitSuccessClearsFormAndResets(t *testing.T) {
	h := newHarness(t, 100)
	fillForm(h, "Jan", "jan@example.com", "Máte volno v srpnu?")
	require.Equal(t, "Jan", h.page.Pipeline().Form().Name)

	h.key(tea.KeyCtrlS)
	subs := h.srv.Submissions()
	require.Len(t, subs, 1)
	require.Equal(t, content.ContactForm{Name: "Jan", Email: "jan@example.com", Message: "Máte volno v srpnu?"}, subs[0])

	require.Equal(t, contact.Form{}, h.page.Pipeline().Form())
	require.Empty(t, h.page.name.Value())
	st := h.page.Pipeline().Status()
	require.False(t, st.Success, "the short reset delay already cleared the success flag")
	require.Empty(t, st.Err)
}

func TestSubmitSuccessShowsMessage(t *testing.T) {
	h := newHarness(t, 100, withResetDelay(time.Hour))
	fillForm(h, "Jan", "jan@example.com", "Ahoj")
	h.key(tea.KeyCtrlS)
	require.True(t, h.page.Pipeline().Status().Success)
	require.Contains(t, strings.Join(h.page.doc.lines, "\n"), contact.MsgSent)
}

func TestSubmitValidationAndRejection(t *testing.T) {
	h := newHarness(t, 100)
	h.key(tea.KeyCtrlS)
	require.Equal(t, contact.MsgNameRequired, h.page.Pipeline().Status().Err)
	require.Empty(t, h.srv.Submissions())

	h.srv.SetContactStatus(http.StatusInternalServerError)
	fillForm(h, "Eva", "eva@example.com", "Zpráva")
	h.key(tea.KeyCtrlS)
	st := h.page.Pipeline().Status()
	require.Equal(t, contact.MsgSubmitFailed, st.Err)
	require.Equal(t, "Eva", h.page.Pipeline().Form().Name, "fields are kept on failure")
}

func TestSubmitIgnoredWhileSubmitting(t *testing.T) {
	h := newHarness(t, 100)
	h.page.Pipeline().Set(contact.FieldName, "Jan")
	h.page.Pipeline().Set(contact.FieldEmail, "jan@example.com")
	h.page.Pipeline().Set(contact.FieldMessage, "Ahoj")
	_, err := h.page.Pipeline().Begin()
	require.NoError(t, err)
	require.Nil(t, h.page.submit())
	h.page.relayout()
	require.Contains(t, strings.Join(h.page.doc.lines, "\n"), contact.LabelSubmitting)
}

func TestQTypesIntoFieldButQuitsOutside(t *testing.T) {
	h := newHarness(t, 100)
	h.click(target{kind: targetField, index: int(contact.FieldMessage)})
	h.runes("q")
	require.False(t, h.m.Quitting())
	require.Equal(t, "q", h.page.Pipeline().Form().Message)

	h.key(tea.KeyEsc)
	require.False(t, h.page.CapturingInput())
	h.runes("q")
	require.True(t, h.m.Quitting())
	require.Zero(t, h.page.events.Len(), "quit detaches the scroll subscription")
}

func TestDrawerNavigatesOnNarrowTerminal(t *testing.T) {
	h := newHarness(t, 60)
	require.True(t, h.m.Compact())
	h.runes("m")
	require.Equal(t, 1, h.m.Screens())
	h.key(tea.KeyDown)
	h.key(tea.KeyDown)
	h.key(tea.KeyEnter)
	require.Equal(t, 0, h.m.Screens(), "navigation closes the drawer")
	require.Equal(t, viewport.Performances, h.page.ActiveSection())
}

func TestCommandPaletteNavigates(t *testing.T) {
	h := newHarness(t, 100)
	h.key(tea.KeyCtrlK)
	require.Equal(t, 1, h.m.Screens())
	h.runes("přejít na kontakt")
	h.key(tea.KeyEnter)
	require.Equal(t, 0, h.m.Screens())
	require.Equal(t, viewport.Contact, h.page.ActiveSection())
}

func TestHistoryScreen(t *testing.T) {
	rows := []repository.Submission{{ID: "1", Name: "Jan", Email: "jan@example.com", Outcome: "sent", CreatedAt: time.Now()}}
	h := newHarness(t, 100, withHistory(func(ctx context.Context, limit int) ([]repository.Submission, error) {
		require.Equal(t, historyLimit, limit)
		return rows, nil
	}))
	h.runes("h")
	require.Equal(t, 1, h.m.Screens())
	require.Contains(t, h.m.View(), "jan@example.com")
}

func TestHistoryDisabledWithoutJournal(t *testing.T) {
	h := newHarness(t, 100)
	h.runes("h")
	require.Equal(t, 0, h.m.Screens())
	res := h.m.CommandRegistry().Search("Odeslané", "page", &h.m)
	require.Len(t, res, 1)
	require.True(t, res[0].Disabled)
}
