package errors

// Code identifies an error condition. Codes are strings so they read well in
// logs and serialize naturally.
type Code string

const (
	// Listing errors.

	// CodeNotADirectory indicates a directory operation was given a file.
	CodeNotADirectory Code = "NOT_A_DIRECTORY"

	// CodeDirectoryRead indicates the store failed while enumerating a directory.
	CodeDirectoryRead Code = "DIRECTORY_READ_ERROR"

	// Store errors.

	// CodeNotFound indicates the requested path does not exist in the store.
	CodeNotFound Code = "NOT_FOUND"

	// CodeNetwork indicates a remote store could not be reached.
	CodeNetwork Code = "NETWORK_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates a caller supplied an invalid argument.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInvalidConfig indicates the configuration is incomplete or inconsistent.
	CodeInvalidConfig Code = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an unexpected internal failure.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeUnknown is reported for nil errors and errors not created by this package.
	CodeUnknown Code = "UNKNOWN"
)
