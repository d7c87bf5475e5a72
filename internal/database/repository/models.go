package repository

import "time"

// Submission is one journaled contact-form submission.
type Submission struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Outcome   string
	Detail    string
	CreatedAt time.Time
}
