package errors

import (
	"fmt"
	"strings"
)

// Verbose errors expose their cause chain for debugging output.
type Verbose interface {
	Verbose() string
}

// CUIError is an error to be shown to the CLI user: a one-line summary of
// what went wrong, optionally followed by an advice telling what to try next
// (log in again, run `feast init`, ...).
type CUIError interface {
	error
	Verbose

	// Advice is the suggested next step. Empty when there is nothing to suggest.
	Advice() string
}

type cuiError struct {
	summary     string
	advice      string
	printDetail func(summary string) (string, error)
	cause       error
}

func (e *cuiError) Unwrap() error {
	return e.cause
}

func (e *cuiError) Error() string {
	message := e.summary
	if e.printDetail != nil {
		detailed, err := e.printDetail(e.summary)
		if err != nil {
			detailed = fmt.Sprintf(
				"%s\n(building detailed message causes error: %s)",
				e.summary, err.Error(),
			)
		}
		message = detailed
	}
	if e.advice != "" {
		message = message + ". " + e.advice
	}
	return message
}

func (e *cuiError) Advice() string {
	return e.advice
}

func (e *cuiError) Verbose() string {
	message := []string{e.Error()}
	switch cause := e.cause.(type) {
	case nil:
		// no-op
	case Verbose:
		message = append(message, "caused by: ", cause.Verbose())
	default:
		message = append(message, "caused by: ", cause.Error())
	}
	return strings.Join(message, "\n")
}

type Option func(*cuiError) *cuiError

func NewCUIError(summary string, options ...Option) CUIError {
	err := &cuiError{summary: summary}
	for _, o := range options {
		err = o(err)
	}
	return err
}

// WithAdvice sets the next step shown after the summary,
// like "Please try `feast auth login` again".
func WithAdvice(advice string) Option {
	return func(e *cuiError) *cuiError {
		e.advice = advice
		return e
	}
}

// WithDetail sets a printer enriching the summary, for messages that need
// content only known at display time (like a server-sent explanation).
func WithDetail(printer func(summary string) (string, error)) Option {
	return func(e *cuiError) *cuiError {
		e.printDetail = printer
		return e
	}
}

// WithCause records the underlying error. It is exposed via Unwrap, so
// errors.Is sees through the CUIError to sentinel causes.
func WithCause(err error) Option {
	return func(e *cuiError) *cuiError {
		e.cause = err
		return e
	}
}
