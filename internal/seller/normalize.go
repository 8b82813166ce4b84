// Package seller canonicalizes seller names and holds the trusted-seller and logo tables.
package seller

import (
	"regexp"
	"strings"
)

var (
	domainParts  = regexp.MustCompile(`\.com|\.org|\.net|\.co|www\.`)
	nonNameChars = regexp.MustCompile(`[^a-z0-9\s]`)
)

// Normalize maps a raw seller string to the form used for whitelist matching
// and deduplication. "Amazon.com", "www.amazon.com" and "AMAZON" all become "amazon".
func Normalize(source string) string {
	s := strings.ToLower(source)
	s = domainParts.ReplaceAllString(s, "")
	s = nonNameChars.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
