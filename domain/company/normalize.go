package company

import "strings"

// Normalize converts free text to its cache-lookup form: runs of whitespace
// collapsed to single spaces, surrounding whitespace removed, case folded.
// Two inputs that normalize equally are treated as the same cache key.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
