package errors

import stderrors "errors"

// WithContext returns a copy of err with key set to value in its context.
// Errors not created by this package are converted with CodeUnknown.
// Returns nil if err is nil.
func WithContext(err error, key string, value any) Error {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]any{key: value})
}

// WithContextMap returns a copy of err with ctx merged into its context.
// Keys in ctx override existing keys. Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]any) Error {
	if err == nil {
		return nil
	}

	base := asError(err)
	merged := base.Context()
	if merged == nil {
		merged = make(map[string]any, len(ctx))
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &fsError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        merged,
		cause:          base.Unwrap(),
	}
}

// WithClassification returns a copy of err with its classification replaced.
// Returns nil if err is nil.
func WithClassification(err error, classification Classification) Error {
	if err == nil {
		return nil
	}

	base := asError(err)
	return &fsError{
		code:           base.Code(),
		classification: classification,
		message:        base.Message(),
		context:        base.Context(),
		cause:          base.Unwrap(),
	}
}

func asError(err error) Error {
	var e Error
	if stderrors.As(err, &e) {
		return e
	}
	return &fsError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
