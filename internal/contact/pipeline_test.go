package contact_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aurenox/aurenox/internal/contact"
	"github.com/aurenox/aurenox/internal/content"
	"github.com/aurenox/aurenox/internal/content/contenttest"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	err   error
	calls []content.ContactForm
}

func (f *fakeSubmitter) CreateContactForm(_ context.Context, form content.ContactForm) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, form)
	return f.err
}

func fill(p *contact.Pipeline, name, email, message string) {
	p.Set(contact.FieldName, name)
	p.Set(contact.FieldEmail, email)
	p.Set(contact.FieldMessage, message)
}

func TestValidationFailureMakesNoRequest(t *testing.T) {
	sub := &fakeSubmitter{}
	p := contact.New(sub)

	_, err := p.Submit(context.Background())
	var verr *contact.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, contact.Status{Err: contact.MsgNameRequired}, p.Status())
	require.Equal(t, contact.Failed, p.Status().State())
	require.Empty(t, sub.calls)

	fill(p, "A", "bad", "hi")
	_, err = p.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, contact.MsgEmailInvalid, p.Status().Err)
	require.False(t, p.Status().Submitting)
	require.Empty(t, sub.calls)
}

func TestSuccessfulSubmissionClearsFormThenSuccessFlag(t *testing.T) {
	srv := contenttest.New(t)
	client := content.NewHTTPClient(srv.URL, time.Second, nil)
	p := contact.New(client, contact.WithResetDelay(20*time.Millisecond))
	require.Equal(t, contact.Form{}, p.Form(), "fields start empty")
	require.Equal(t, contact.Idle, p.Status().State())

	fill(p, "Jana", "jana@aurenox.cz", "Chceme show na svatbu.")
	form, err := p.Begin()
	require.NoError(t, err)
	require.Equal(t, contact.Submitting, p.Status().State())
	require.Equal(t, contact.Status{Submitting: true}, p.Status())

	ticket, ok := p.Finish(p.Send(context.Background(), form))
	require.True(t, ok)
	require.True(t, ticket.Valid())
	require.Equal(t, contact.Status{Success: true}, p.Status())
	require.Equal(t, contact.Succeeded, p.Status().State())
	require.Equal(t, contact.Form{}, p.Form(), "fields cleared after success")
	require.Equal(t, []content.ContactForm{{Name: "Jana", Email: "jana@aurenox.cz", Message: "Chceme show na svatbu."}}, srv.Submissions())

	require.True(t, ticket.Wait())
	require.True(t, p.Expire(ticket))
	require.Equal(t, contact.Status{}, p.Status(), "success cleared, error still none")
	require.Equal(t, contact.Form{}, p.Form())
}

func TestServerRejectionKeepsFieldsAndRepeatsDeterministically(t *testing.T) {
	srv := contenttest.New(t)
	srv.SetContactStatus(http.StatusInternalServerError)
	p := contact.New(content.NewHTTPClient(srv.URL, time.Second, nil))
	fill(p, "Jana", "jana@aurenox.cz", "Ahoj")

	for i := 0; i < 2; i++ {
		ticket, err := p.Submit(context.Background())
		var statusErr *content.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.False(t, ticket.Valid())
		require.Equal(t, contact.Status{Err: contact.MsgSubmitFailed}, p.Status())
		require.Equal(t, contact.Form{Name: "Jana", Email: "jana@aurenox.cz", Message: "Ahoj"}, p.Form())
	}
	require.Len(t, srv.Submissions(), 2, "no hidden retries")
}

func TestTransportFailureShowsRaisedMessage(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("dial tcp: connection refused")}
	p := contact.New(sub)
	fill(p, "Jana", "jana@aurenox.cz", "Ahoj")

	_, err := p.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, "dial tcp: connection refused", p.Status().Err)
	require.Equal(t, "Jana", p.Form().Name)
}

func TestDisposeCancelsPendingReset(t *testing.T) {
	p := contact.New(&fakeSubmitter{}, contact.WithResetDelay(time.Hour))
	fill(p, "Jana", "jana@aurenox.cz", "Ahoj")
	ticket, err := p.Submit(context.Background())
	require.NoError(t, err)

	done := make(chan bool, 1)
	go func() { done <- ticket.Wait() }()
	p.Dispose()

	select {
	case fired := <-done:
		require.False(t, fired)
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return after dispose")
	}
	require.False(t, p.Expire(ticket))
	require.True(t, p.Status().Success, "disposed pipeline is not mutated")
}

func TestOnlyLatestTicketClearsSuccess(t *testing.T) {
	p := contact.New(&fakeSubmitter{}, contact.WithResetDelay(time.Millisecond))
	fill(p, "Jana", "jana@aurenox.cz", "první")
	first, err := p.Submit(context.Background())
	require.NoError(t, err)
	fill(p, "Jana", "jana@aurenox.cz", "druhá")
	second, err := p.Submit(context.Background())
	require.NoError(t, err)

	require.False(t, p.Expire(first))
	require.True(t, p.Status().Success)
	require.True(t, p.Expire(second))
	require.False(t, p.Status().Success)
}

func TestExpireLeavesLaterErrorUntouched(t *testing.T) {
	p := contact.New(&fakeSubmitter{}, contact.WithResetDelay(time.Millisecond))
	fill(p, "Jana", "jana@aurenox.cz", "Ahoj")
	ticket, err := p.Submit(context.Background())
	require.NoError(t, err)

	_, err = p.Begin() // fields were cleared, so this fails validation
	require.Error(t, err)
	require.True(t, p.Expire(ticket))
	require.Equal(t, contact.Status{Err: contact.MsgNameRequired}, p.Status())
}

func TestSendJournalsOutcome(t *testing.T) {
	var records []contact.Record
	journal := contact.JournalFunc(func(_ context.Context, r contact.Record) error {
		records = append(records, r)
		return errors.New("disk full")
	})
	sub := &fakeSubmitter{}
	p := contact.New(sub, contact.WithJournal(journal))
	form := contact.Form{Name: "A", Email: "a@b.cz", Message: "m"}

	require.NoError(t, p.Send(context.Background(), form), "journal errors do not fail the send")
	sub.err = &content.StatusError{Method: http.MethodPost, Path: content.PathContactForm, Code: 500}
	require.Error(t, p.Send(context.Background(), form))
	sub.err = errors.New("timeout")
	require.Error(t, p.Send(context.Background(), form))

	require.Len(t, records, 3)
	require.Equal(t, contact.OutcomeSent, records[0].Outcome)
	require.Equal(t, contact.OutcomeRejected, records[1].Outcome)
	require.Equal(t, contact.OutcomeFailed, records[2].Outcome)
	require.Equal(t, "timeout", records[2].Detail)
}
