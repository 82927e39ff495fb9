package util

// BoolOr returns *b, or fallback when b is nil. Request payloads use it to
// fall back to the configured default for optional flags.
func BoolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}

	return *b
}
