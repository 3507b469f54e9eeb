package versioning

// EqualStrings reports whether two optional strings hold the same value.
// Two nil pointers are equal, a nil and a non-nil pointer are not.
// Every field comparison in the reconcilers goes through this helper so
// that null handling stays uniform.
func EqualStrings(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// StringPtr returns a pointer to s. Convenience for building submitted
// document trees in handlers and tests.
func StringPtr(s string) *string {
	return &s
}
