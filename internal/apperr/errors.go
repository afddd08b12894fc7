// Package apperr is the error taxonomy for the scraper engine.
//
// Only two kinds are ever fatal to a run: NotFound (unknown site identifier)
// and Unsupported (a registered site that refuses automated access). Transport
// errors are wrapped here for logging but absorbed by the scrapers into an
// empty result.
package apperr

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindUnsupported  Kind = "UNSUPPORTED"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindTransport    Kind = "TRANSPORT"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *Error {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func NotFound(message string, err error) *Error {
	return New(KindNotFound, message, err)
}

func Unsupported(message string, err error) *Error {
	return New(KindUnsupported, message, err)
}

func InvalidInput(message string, err error) *Error {
	return New(KindInvalidInput, message, err)
}

func Transport(message string, err error) *Error {
	return New(KindTransport, message, err)
}

func isKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool    { return isKind(err, KindNotFound) }
func IsUnsupported(err error) bool { return isKind(err, KindUnsupported) }

// Message returns the human-readable message for taxonomy errors, or the
// plain Error() string otherwise. The CLI shows this instead of a stack.
func Message(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
