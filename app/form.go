package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aurenox/aurenox/internal/contact"
)

// submit validates and, when valid, sends the form asynchronously. The submit
// control is inert while a submission is in flight.
func (p *Page) submit() tea.Cmd {
	pl := p.deps.Pipeline
	if pl.Status().Submitting || p.disposed {
		return nil
	}
	f, err := pl.Begin()
	if err != nil {
		return nil
	}
	ctx := p.ctx
	return func() tea.Msg {
		return submitDoneMsg{err: pl.Send(ctx, f)}
	}
}

func (p *Page) finishSubmit(err error) tea.Cmd {
	t, ok := p.deps.Pipeline.Finish(err)
	if !ok {
		return nil
	}
	p.name.SetValue("")
	p.email.SetValue("")
	p.message.SetValue("")
	return waitReset(t)
}

func waitReset(t contact.Ticket) tea.Cmd {
	return func() tea.Msg {
		return resetMsg{ticket: t, fired: t.Wait()}
	}
}

// updateField feeds msg to the focused form field and mirrors its value into the form.
func (p *Page) updateField(msg tea.Msg) tea.Cmd {
	if !p.CapturingInput() {
		return nil
	}
	var cmd tea.Cmd
	field := contact.Field(p.focus.index)
	switch field {
	case contact.FieldName:
		p.name, cmd = p.name.Update(msg)
		p.deps.Pipeline.Set(field, p.name.Value())
	case contact.FieldEmail:
		p.email, cmd = p.email.Update(msg)
		p.deps.Pipeline.Set(field, p.email.Value())
	case contact.FieldMessage:
		p.message, cmd = p.message.Update(msg)
		p.deps.Pipeline.Set(field, p.message.Value())
	}
	return cmd
}

func (p *Page) syncFieldFocus() tea.Cmd {
	p.name.Blur()
	p.email.Blur()
	p.message.Blur()
	if !p.CapturingInput() {
		return nil
	}
	switch contact.Field(p.focus.index) {
	case contact.FieldName:
		return p.name.Focus()
	case contact.FieldEmail:
		return p.email.Focus()
	case contact.FieldMessage:
		return p.message.Focus()
	}
	return nil
}
