// Package retry provides the bounded retry loop for download transfers.
//
// Only transient transport failures are retried; store-level errors
// (access denied, not-found at transfer time) fail immediately. The loop
// runs at most budget+1 attempts and surfaces the final error when the
// budget is exhausted.
package retry
