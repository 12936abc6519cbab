package errors

import (
	stderrors "errors"
	"fmt"
)

// New creates an Error with the default classification for code.
func New(code Code, message string) Error {
	return &fsError{
		code:           code,
		classification: classify(code),
		message:        message,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. If err already is an Error its
// classification is kept. Returns nil if err is nil.
func Wrap(err error, code Code, message string) Error {
	if err == nil {
		return nil
	}

	classification := classify(code)
	var inner Error
	if stderrors.As(err, &inner) {
		classification = inner.Classification()
	}

	return &fsError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code Code, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
