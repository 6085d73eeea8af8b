package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeText collapses every whitespace run into one space and trims
func SanitizeText(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// NormalizeContact strips every Twilio "whatsapp:" channel marker
func NormalizeContact(from string) string {
	return strings.TrimSpace(strings.ReplaceAll(from, "whatsapp:", ""))
}
