// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
	slugPattern      = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// GenerateSlug derives a URL-safe slug from a job title
// ("Senior Go Engineer!" -> "senior-go-engineer").
func GenerateSlug(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether s contains only lowercase letters, digits and dashes.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
