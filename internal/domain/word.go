package domain

import "strings"

// Entry represents an english word and its translation
type Entry struct {
	Word        string
	Translation string
}

// Normalize trims surrounding whitespace and lowercases s
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
