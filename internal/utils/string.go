package utils

import "strings"

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// IsBlank reports whether the pointer is nil or points to an empty string.
func IsBlank(s *string) bool {
	return s == nil || *s == ""
}
