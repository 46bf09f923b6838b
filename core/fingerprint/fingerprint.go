package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"strings"
)

// Result classifies a local/remote fingerprint comparison.
type Result string

const (
	// Match means both fingerprints exist and are byte-equal.
	Match Result = "match"
	// Mismatch means both fingerprints exist and differ.
	Mismatch Result = "mismatch"
	// Unavailable means the remote fingerprint is a multipart-composite
	// digest and cannot be compared against single-part content.
	Unavailable Result = "unavailable"
)

// FileDigest computes the content fingerprint of a local file by streaming
// its entire content through MD5. The file is never loaded wholesale into
// memory.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// IsComposite reports whether a remote digest is a multipart-composite
// marker (ETag of the form "<md5>-<parts>") rather than a plain content MD5.
func IsComposite(digest string) bool {
	return strings.Contains(digest, "-")
}

// Compare classifies a local fingerprint against a remote one.
// A composite remote digest is Unavailable regardless of the local content;
// the engine must treat that as a hard error, never as a silent skip.
func Compare(local, remote string) Result {
	if IsComposite(remote) {
		return Unavailable
	}
	if local == remote {
		return Match
	}
	return Mismatch
}
