// Package errors provides the structured errors returned by fatls packages.
//
// Every error carries a Code identifying the condition, a Classification that
// tells callers whether retrying could help, an optional context map for
// debugging, and the wrapped cause. Errors remain compatible with the standard
// library (errors.Is, errors.As, errors.Unwrap).
//
// # Creating errors
//
//	err := errors.New(errors.CodeNotADirectory, "not a directory")
//	err = errors.WithContext(err, "name", dir.Name())
//
// Wrapping a lower level failure:
//
//	if cause := dir.Err(); cause != nil {
//	    return errors.Wrap(cause, errors.CodeDirectoryRead, "directory read failed")
//	}
//
// # Inspecting errors
//
//	switch errors.GetCode(err) {
//	case errors.CodeNotADirectory:
//	    // ...
//	}
//
// Only CodeNetwork is retryable by default. The listing and dump operations
// never retry on their own; retry policy belongs to the caller.
package errors
