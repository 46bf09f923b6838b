// Package utils provides common utility functions for the s3state tool.
// It includes helper functions for boolean coercion, metadata string parsing,
// and home-directory path expansion used at the CLI boundary.
package utils
