package contact

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/logging"
)

// ResetDelay is how long the success flag stays up.
const ResetDelay = 5 * time.Second

// State is the pipeline state derived from Status.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	return [...]string{"idle", "submitting", "succeeded", "failed"}[s]
}

// Status is the submission status shown next to the form. Err is empty when there is no error.
type Status struct {
	Submitting bool
	Success    bool
	Err        string
}

// State derives the state machine position.
func (s Status) State() State {
	switch {
	case s.Submitting:
		return Submitting
	case s.Err != "":
		return Failed
	case s.Success:
		return Succeeded
	default:
		return Idle
	}
}

// Submitter posts a contact form to the content service.
type Submitter interface {
	CreateContactForm(ctx context.Context, form content.ContactForm) error
}

// Outcome classifies a completed network submission.
type Outcome string

const (
	OutcomeSent     Outcome = "sent"
	OutcomeRejected Outcome = "rejected"
	OutcomeFailed   Outcome = "failed"
)

// Record is one journaled submission.
type Record struct {
	Form    Form
	Outcome Outcome
	Detail  string
}

// Journal keeps a record of submissions. Journal errors never affect the pipeline.
type Journal interface {
	Record(ctx context.Context, r Record) error
}

// JournalFunc adapts a function to Journal.
type JournalFunc func(ctx context.Context, r Record) error

func (f JournalFunc) Record(ctx context.Context, r Record) error { return f(ctx, r) }

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithResetDelay overrides ResetDelay.
func WithResetDelay(d time.Duration) Option {
	return func(p *Pipeline) { p.delay = d }
}

// WithJournal records every completed submission.
func WithJournal(j Journal) Option {
	return func(p *Pipeline) { p.journal = j }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.log = logging.OrNop(l) }
}

// Pipeline owns the form and its status. Apart from Send and Ticket.Wait, its methods must
// be called from one goroutine.
type Pipeline struct {
	submitter Submitter
	journal   Journal
	log       *zap.Logger
	delay     time.Duration

	form   Form
	status Status

	ctx      context.Context
	cancel   context.CancelFunc
	ticket   uint64
	disposed bool
}

func New(s Submitter, opts ...Option) *Pipeline {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pipeline{
		submitter: s,
		log:       zap.NewNop(),
		delay:     ResetDelay,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Form returns the current field values.
func (p *Pipeline) Form() Form { return p.form }

// Status returns the current status.
func (p *Pipeline) Status() Status { return p.status }

// Set updates one field.
func (p *Pipeline) Set(f Field, v string) { p.form.set(f, v) }

// Begin validates the form. On a validation failure the status becomes Failed with the
// rule's message and the *ValidationError is returned; no request may be made. Otherwise
// the status becomes Submitting and the form to send is returned. Begin does not refuse a
// submit while one is already in flight; the caller disables its submit control instead.
func (p *Pipeline) Begin() (Form, error) {
	if err := Validate(p.form); err != nil {
		p.status = Status{Err: err.Error()}
		return Form{}, err
	}
	p.status = Status{Submitting: true}
	return p.form, nil
}

// Send posts f and journals the outcome. It touches no pipeline state and may run on any
// goroutine.
func (p *Pipeline) Send(ctx context.Context, f Form) error {
	err := p.submitter.CreateContactForm(ctx, content.ContactForm{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	})
	rec := Record{Form: f, Outcome: OutcomeSent}
	if err != nil {
		rec.Outcome, rec.Detail = OutcomeFailed, err.Error()
		var statusErr *content.StatusError
		if errors.As(err, &statusErr) {
			rec.Outcome = OutcomeRejected
		}
		p.log.Warn("contact submission failed", zap.String("outcome", string(rec.Outcome)), zap.Error(err))
	}
	if p.journal != nil {
		if jerr := p.journal.Record(ctx, rec); jerr != nil {
			p.log.Error("journal submission", zap.Error(jerr))
		}
	}
	return err
}

// Finish applies the result of Send. On success the fields are cleared and a reset ticket
// is returned; on failure the fields are kept. An HTTP rejection shows MsgSubmitFailed, any
// other error shows its own message.
func (p *Pipeline) Finish(err error) (Ticket, bool) {
	if err != nil {
		msg := err.Error()
		var statusErr *content.StatusError
		if errors.As(err, &statusErr) {
			msg = MsgSubmitFailed
		}
		p.status = Status{Err: msg}
		return Ticket{}, false
	}
	p.status = Status{Success: true}
	p.form = Form{}
	p.ticket++
	return Ticket{id: p.ticket, delay: p.delay, ctx: p.ctx}, true
}

// Submit runs Begin, Send and Finish in sequence.
func (p *Pipeline) Submit(ctx context.Context) (Ticket, error) {
	f, err := p.Begin()
	if err != nil {
		return Ticket{}, err
	}
	err = p.Send(ctx, f)
	t, _ := p.Finish(err)
	return t, err
}

// Expire clears the success flag for t. Only the latest ticket of a live pipeline applies;
// other status fields are left as they are.
func (p *Pipeline) Expire(t Ticket) bool {
	if p.disposed || t.id == 0 || t.id != p.ticket {
		return false
	}
	p.status.Success = false
	return true
}

// Dispose cancels pending tickets. Later Expire calls are ignored.
func (p *Pipeline) Dispose() {
	p.disposed = true
	p.cancel()
}

// Ticket is a scheduled clear of the success flag, cancelled when its pipeline is disposed.
type Ticket struct {
	id    uint64
	delay time.Duration
	ctx   context.Context
}

// Valid reports whether t was issued by a successful submission.
func (t Ticket) Valid() bool { return t.id != 0 }

// Delay returns the scheduled delay.
func (t Ticket) Delay() time.Duration { return t.delay }

// Wait blocks until the delay elapses (true) or the pipeline is disposed (false).
func (t Ticket) Wait() bool {
	if t.ctx == nil {
		return false
	}
	timer := time.NewTimer(t.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-t.ctx.Done():
		return false
	}
}
