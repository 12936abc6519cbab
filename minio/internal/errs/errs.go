// Package errs provides error handling utilities for the minio store.
package errs

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/fatls/errors"
)

// Translate converts MinIO errors to stdlib fs errors. Transport failures
// are returned as retryable errors with errors.CodeNetwork.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	errResp := minio.ToErrorResponse(err)

	switch errResp.Code {
	case "NoSuchKey", "NoSuchBucket":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return errors.Wrap(err, errors.CodeNetwork, "minio: endpoint unreachable")
	}

	return fmt.Errorf("minio: %w", err)
}

// PathError wraps an error in a fs.PathError for the given operation and path.
// If the error is nil, returns nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}
