package util

import (
	"errors"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFileName reduces a user-supplied file name to a storage-safe
// character set and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = unsafeChars.ReplaceAllString(s, "_")
	if s == "" || strings.Trim(s, "_") == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
