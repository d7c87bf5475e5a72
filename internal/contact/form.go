// Package contact runs the contact-form pipeline: fixed-rule validation, one asynchronous
// submission, and a tri-state status whose success flag clears itself after a delay.
package contact

import (
	"regexp"
	"strings"
)

// Field names one form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldMessage
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Form is the three required inputs.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Get returns the value of f.
func (f Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

func (f *Form) set(field Field, v string) {
	switch field {
	case FieldName:
		f.Name = v
	case FieldEmail:
		f.Email = v
	case FieldMessage:
		f.Message = v
	}
}

// User-facing messages.
const (
	MsgNameRequired    = "Jméno je povinné"
	MsgEmailRequired   = "Email je povinný"
	MsgEmailInvalid    = "Neplatný email"
	MsgMessageRequired = "Zpráva je povinná"
	MsgSubmitFailed    = "Něco se pokazilo. Zkuste to prosím později."
	MsgSent            = "Zpráva byla úspěšně odeslána!"
	LabelSubmit        = "Odeslat zprávu"
	LabelSubmitting    = "Odesílání..."
)

// Rule is one validation check. Rules run in declaration order.
type Rule int

const (
	RuleNameRequired Rule = iota + 1
	RuleEmailRequired
	RuleEmailFormat
	RuleMessageRequired
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError is the first failing rule.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks f and returns the first failing rule, or nil.
func Validate(f Form) error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return &ValidationError{Rule: RuleNameRequired, Message: MsgNameRequired}
	case strings.TrimSpace(f.Email) == "":
		return &ValidationError{Rule: RuleEmailRequired, Message: MsgEmailRequired}
	case !emailPattern.MatchString(f.Email):
		return &ValidationError{Rule: RuleEmailFormat, Message: MsgEmailInvalid}
	case strings.TrimSpace(f.Message) == "":
		return &ValidationError{Rule: RuleMessageRequired, Message: MsgMessageRequired}
	}
	return nil
}
