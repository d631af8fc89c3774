package models

import "time"

// TimestampLayout renders timestamps as ISO 8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Nullable carries a patch value and tells an omitted field apart from an explicit null.
type Nullable[T any] struct {
	Value *T
	Set   bool
}

// NullableOf returns a patch value that is set to v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: &v, Set: true}
}

// Null returns a patch value that is explicitly set to null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
