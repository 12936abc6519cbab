package errors

import "fmt"

// Error extends the standard error interface with a code, a retry
// classification and attached context.
type Error interface {
	error

	// Code returns the code identifying the condition.
	Code() Code

	// Classification reports whether the error is retryable or permanent.
	Classification() Classification

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]any

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}

// fsError is the only implementation of Error. Values are immutable; every
// helper in this package returns a new value.
type fsError struct {
	code           Code
	classification Classification
	message        string
	context        map[string]any
	cause          error
}

// Error formats the error as "[CODE] message" or "[CODE] message: cause".
func (e *fsError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *fsError) Code() Code                     { return e.code }
func (e *fsError) Classification() Classification { return e.classification }
func (e *fsError) Message() string                { return e.message }
func (e *fsError) Unwrap() error                  { return e.cause }

// Context returns a copy so callers cannot mutate the error.
func (e *fsError) Context() map[string]any {
	return copyContext(e.context)
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
