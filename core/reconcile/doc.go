// Package reconcile implements the idempotent decision engine behind every
// s3state invocation.
//
// Given a desired-state Request (bucket, key, source/destination, overwrite
// policy) the engine observes the remote store fresh, classifies local
// against remote content fingerprints, and decides between no-op, transfer,
// create-then-transfer, or error. Each invocation produces exactly one
// terminal Outcome: changed, unchanged, or a descriptive failure.
//
// # Decision tables
//
// Downloads (get/getstr): missing bucket or key fails fast; an absent local
// destination transfers without comparison; otherwise the overwrite policy
// is applied to the fingerprint classification. overwrite=always re-fetches
// even identical content; overwrite=never blocks differing content with a
// "force required" outcome; an uncomparable (multipart) remote fingerprint
// is always a hard error.
//
// Uploads (put) use the same matrix, with a missing bucket triggering a
// paired create-bucket-then-upload, never one without the other.
//
// # Quirks preserved
//
// geturl reports changed=true despite being a pure read. Downstream
// idempotence tracking depends on it, so the behavior is kept on purpose.
//
// # Consistency model
//
// One invocation is one sequential thread of control with no shared state.
// Concurrent invocations racing on the same key resolve as last-writer-wins;
// the engine takes no distributed locks. The only retry loop is the bounded
// transient-error retry around download transfers.
package reconcile
