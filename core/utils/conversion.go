package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ToBool converts boolean-like strings to bool.
// It accepts the usual truthy spellings ("1", "true", "yes", "on").
func ToBool(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "on", "y":
		return true
	default:
		return false
	}
}

// ExpandPath expands a leading ~ or ~/ in a filesystem path to the current
// user's home directory. Other paths are returned unchanged.
func ExpandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ParseMetadata parses a "key=value,key=value" string into a metadata map.
// Entries without an equals sign are skipped. An empty input yields nil.
func ParseMetadata(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	meta := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		meta[k] = strings.TrimSpace(v)
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
