package types

import (
	"regexp"
	"strings"
	"time"
)

var hexDataRegex = regexp.MustCompile(`^0x([0-9a-fA-F]{2})*$`)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// IsHexData checks if a string is 0x-prefixed, even-length hex
func IsHexData(s string) bool {
	return len(s) > 2 && hexDataRegex.MatchString(s)
}

// ParseTimestamp parses an RFC 3339 timestamp, returning nil for nil, empty or unparseable input
func ParseTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// FormatTimestamp renders a timestamp as RFC 3339 in UTC, nil stays nil
func FormatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
