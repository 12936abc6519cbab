// Package minio provides a MinIO/S3-compatible implementation of core.Store.
//
// Objects are files and key prefixes ending in "/" are directories. Reads
// stream objects with HTTP range requests, so opened files support Seek
// without downloading the whole object.
package minio

import (
	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/fatls/errors"
)

// Config holds MinIO store configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000")
	Endpoint string

	// Bucket is the S3 bucket name
	Bucket string

	// AccessKey is the access key ID for authentication
	AccessKey string

	// SecretKey is the secret access key for authentication
	SecretKey string

	// UseSSL enables HTTPS connections
	UseSSL bool

	// Prefix is an optional prefix for all object keys (for namespacing)
	Prefix string

	// Client is an optional pre-configured MinIO client
	// If provided, Endpoint/AccessKey/SecretKey are ignored
	Client *minio.Client
}

// validate checks if the configuration is valid.
// Either Client OR (Endpoint + Bucket + AccessKey + SecretKey) must be provided.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return invalid("bucket is required", "bucket")
	}

	// Other fields are ignored when a client is supplied.
	if c.Client != nil {
		return nil
	}

	if c.Endpoint == "" {
		return invalid("endpoint is required when client is not provided", "endpoint")
	}
	if c.AccessKey == "" {
		return invalid("access key is required when client is not provided", "access_key")
	}
	if c.SecretKey == "" {
		return invalid("secret key is required when client is not provided", "secret_key")
	}

	return nil
}

func invalid(msg, field string) error {
	return errors.WithContext(errors.New(errors.CodeInvalidConfig, msg), "field", field)
}
