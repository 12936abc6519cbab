package errors

import (
	stderrors "errors"
	"io/fs"
)

// Is wraps the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode returns the code of the outermost Error in err's chain, or
// CodeUnknown when err is nil or carries no code.
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	var e Error
	if stderrors.As(err, &e) {
		return e.Code()
	}
	return CodeUnknown
}

// IsRetryable reports whether err is classified as retryable.
// Errors not created by this package are never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var e Error
	if stderrors.As(err, &e) {
		return e.Classification().IsRetryable()
	}
	return false
}

// FromStore converts an error returned by a store provider into an Error,
// mapping fs.ErrNotExist to CodeNotFound and anything else to fallback.
// An Error is returned unchanged. An Error found deeper in the chain, such as
// one inside an *fs.PathError, lends its code and classification to a wrap of
// the whole chain.
func FromStore(err error, fallback Code, message string) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	var e Error
	if stderrors.As(err, &e) {
		return WithClassification(Wrap(err, e.Code(), message), e.Classification())
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return Wrap(err, CodeNotFound, message)
	}
	return Wrap(err, fallback, message)
}
