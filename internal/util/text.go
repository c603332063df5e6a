package util

import "strings"

// SanitizeText strips invalid UTF-8 sequences and NUL bytes from ingested
// generation text before it reaches the tokenizer.
func SanitizeText(value string) string {
	if value == "" {
		return value
	}

	sanitized := strings.ToValidUTF8(value, "")
	return strings.ReplaceAll(sanitized, "\x00", "")
}
