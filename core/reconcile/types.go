package reconcile

import (
	"fmt"
	"time"

	"s3state/core/storage"
	"s3state/core/utils"
)

// Mode selects the declarative action performed by an invocation.
type Mode string

const (
	// ModePut uploads a local file to an object key.
	ModePut Mode = "put"
	// ModeGet downloads an object to a local destination path.
	ModeGet Mode = "get"
	// ModeGetString downloads an object and returns its content directly.
	ModeGetString Mode = "getstr"
	// ModeGetURL generates a time-limited retrieval URL for an object.
	ModeGetURL Mode = "geturl"
	// ModeCreate creates a bucket, or a directory-marker key inside one.
	ModeCreate Mode = "create"
	// ModeDelete deletes a bucket after draining all of its keys.
	ModeDelete Mode = "delete"
	// ModeDeleteObject deletes a single object from a bucket.
	ModeDeleteObject Mode = "delobj"
)

// OverwritePolicy controls whether an existing counterpart may be replaced.
type OverwritePolicy string

const (
	// OverwriteAlways transfers unconditionally, even over identical content.
	OverwriteAlways OverwritePolicy = "always"
	// OverwriteNever blocks any transfer that would replace existing content.
	OverwriteNever OverwritePolicy = "never"
	// OverwriteIfDifferent transfers only when fingerprints differ.
	OverwriteIfDifferent OverwritePolicy = "different"
)

// ParseOverwritePolicy normalizes a caller-supplied overwrite value into the
// three-way policy. Boolean-like spellings are accepted for compatibility:
// truthy values coerce to always, anything else to never. An empty value
// defaults to always.
func ParseOverwritePolicy(raw string) OverwritePolicy {
	switch OverwritePolicy(raw) {
	case OverwriteAlways, OverwriteNever, OverwriteIfDifferent:
		return OverwritePolicy(raw)
	}
	if raw == "" || utils.ToBool(raw) {
		return OverwriteAlways
	}
	return OverwriteNever
}

// Request describes the desired state for a single invocation. It is built
// once at the boundary and never mutated by the engine.
type Request struct {
	// Mode is the action to perform.
	Mode Mode
	// Bucket is the target bucket name. Required for every mode.
	Bucket string
	// Key is the object key inside the bucket. Required for object-level modes.
	Key string
	// VersionID optionally pins a specific object version for downloads.
	VersionID string
	// Source is the local file path uploaded by put.
	Source string
	// Dest is the local file path written by get.
	Dest string
	// Overwrite is the policy applied when both sides already exist.
	Overwrite OverwritePolicy
	// Retries is the extra download attempts allowed on transient failures.
	Retries int
	// ExpirySeconds is the lifetime of generated retrieval URLs.
	ExpirySeconds int
	// Metadata is attached to uploaded objects.
	Metadata map[string]string
	// Encrypt requests server-side encryption for uploads.
	Encrypt bool
	// Region is the caller-resolved location used when creating buckets.
	Region string
}

// Validate checks that the parameters required by the request's mode are
// present. It performs no remote calls.
func (r Request) Validate() error {
	if r.Bucket == "" {
		return fail(storage.ErrMissingParameter, "bucket parameter is required")
	}

	switch r.Mode {
	case ModePut:
		if r.Key == "" {
			return fail(storage.ErrMissingParameter, "object parameter is required")
		}
		if r.Source == "" {
			return fail(storage.ErrMissingParameter, "src parameter is required")
		}
	case ModeGet:
		if r.Key == "" {
			return fail(storage.ErrMissingParameter, "object parameter is required")
		}
		if r.Dest == "" {
			return fail(storage.ErrMissingParameter, "dest parameter is required")
		}
	case ModeGetString, ModeGetURL, ModeDeleteObject:
		if r.Key == "" {
			return fail(storage.ErrMissingParameter, "object parameter is required")
		}
	case ModeCreate, ModeDelete:
		// bucket-level modes: key is optional (create) or ignored (delete)
	default:
		return fmt.Errorf("unsupported mode %q", r.Mode)
	}
	return nil
}

// Expiry returns the URL lifetime as a duration, defaulting to 600 seconds.
func (r Request) Expiry() time.Duration {
	secs := r.ExpirySeconds
	if secs <= 0 {
		secs = 600
	}
	return time.Duration(secs) * time.Second
}

// Outcome is the single terminal result of an invocation. Exactly one
// Outcome (or one error) is produced per Run call.
type Outcome struct {
	// Changed reports whether the invocation mutated state.
	Changed bool `json:"changed"`

	// Message is the human-readable description of the result.
	Message string `json:"message"`

	// URL carries a presigned retrieval URL for put and geturl modes.
	URL string `json:"url,omitempty"`

	// Contents carries the object content for getstr mode.
	Contents string `json:"contents,omitempty"`
}

// fail wraps a sentinel error kind with a human-readable message.
func fail(kind error, msg string) error {
	return fmt.Errorf("%s: %w", msg, kind)
}
