// Package validation contains small helpers for pointer fields and nullable
// values used across the bridge and repository layers.
package validation

import "time"

func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to s, or nil when s is empty.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

// GetStringOrEmpty returns the string value or an empty string if nil.
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetStringOrDefault returns the string value or defaultValue if nil.
func GetStringOrDefault(s *string, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	return *s
}

// GetTimeOrEmpty returns the time value or the zero time if nil.
func GetTimeOrEmpty(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
