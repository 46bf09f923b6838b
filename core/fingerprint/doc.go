// Package fingerprint computes and compares content fingerprints for
// local files and remote objects.
//
// Fingerprints are content-addressed (full-file MD5), never metadata-based.
// Remote fingerprints come from the store's reported ETag; objects produced
// by multipart upload carry a composite ETag that is not a content MD5, so
// comparison against them is classified Unavailable rather than guessed at.
package fingerprint
