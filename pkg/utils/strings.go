package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile("[^a-z0-9 -]+")
	slugDashes  = regexp.MustCompile("-+")
)

// GenerateSlug converts a string into a URL-friendly slug.
// e.g. "Wireless Headphones!" -> "wireless-headphones"
func GenerateSlug(input string) string {
	s := strings.ToLower(input)

	// Remove invalid chars (keep a-z, 0-9, space, hyphen)
	s = slugInvalid.ReplaceAllString(s, "")

	s = strings.ReplaceAll(s, " ", "-")
	s = slugDashes.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// ParseInt parses a string to int with a fallback default value
func ParseInt(s string, defaultVal int) int {
	if s == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return val
}
