package errors

// Classification tells a caller whether retrying the failed operation may succeed.
type Classification string

const (
	// ClassificationRetryable marks transient failures such as an unreachable endpoint.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent marks failures that will repeat on retry.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable reports whether c is ClassificationRetryable.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[Code]Classification{
	CodeNetwork: ClassificationRetryable,

	CodeNotADirectory: ClassificationPermanent,
	CodeDirectoryRead: ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// classify returns the default classification for code. Unlisted codes are permanent.
func classify(code Code) Classification {
	if c, ok := defaultClassifications[code]; ok {
		return c
	}
	return ClassificationPermanent
}
