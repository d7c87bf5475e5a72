package content

import (
	"errors"
	"fmt"
)

// ErrMissingData is returned when a response body has no data array.
var ErrMissingData = errors.New("response has no data array")

// StatusError is a non-success HTTP response from the content service.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Code)
}

// FetchError reports which collection made a load cycle fail.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
