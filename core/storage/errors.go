package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds the engine distinguishes.
var (
	// ErrBucketNotFound indicates the target bucket does not exist.
	ErrBucketNotFound = errors.New("storage: bucket not found")

	// ErrKeyNotFound indicates the target object (or object version) does not exist.
	ErrKeyNotFound = errors.New("storage: key not found")

	// ErrLocalSourceNotFound indicates the local source file for an upload is missing.
	ErrLocalSourceNotFound = errors.New("storage: local source not found")

	// ErrInvalidSource indicates a directory was given where a file is required.
	ErrInvalidSource = errors.New("storage: invalid source")

	// ErrMissingParameter indicates a required request parameter was not supplied.
	ErrMissingParameter = errors.New("storage: missing parameter")

	// ErrFingerprintUnavailable indicates the remote object's content digest cannot
	// be used for comparison (multipart-composite ETag).
	ErrFingerprintUnavailable = errors.New("storage: fingerprint unavailable")

	// ErrTransientTransport indicates a retryable network-level failure.
	ErrTransientTransport = errors.New("storage: transient transport error")

	// ErrStore indicates a non-retryable backend failure.
	ErrStore = errors.New("storage: store error")

	// ErrAuthentication indicates the resolved credentials were rejected.
	ErrAuthentication = errors.New("storage: authentication failed")

	// ErrUnknownConnection indicates the client could not be constructed.
	ErrUnknownConnection = errors.New("storage: unknown connection error")
)

// Error wraps a sentinel with the operation and target that produced it.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("storage %s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	case e.Bucket != "":
		return fmt.Sprintf("storage %s %s: %v", e.Op, e.Bucket, e.Err)
	default:
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a wrapped storage error.
func NewError(op, bucket, key string, err error) error {
	return &Error{Op: op, Bucket: bucket, Key: key, Err: err}
}

// IsTransient reports whether an error is a retryable transport failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransientTransport)
}

// IsNotFound reports whether an error is a bucket- or key-not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound) || errors.Is(err, ErrKeyNotFound)
}
