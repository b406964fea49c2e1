// Package validation provides input validation utilities.
package validation

import (
	"fmt"
	"regexp"

	gosimple "github.com/gosimple/slug"
)

// GroupSlugMaxLen is the maximum stored length of a group slug.
const GroupSlugMaxLen = 100

var groupSlugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// DeriveGroupSlug derives a URL-safe slug from a group title, transliterating
// non-Latin characters and truncating to GroupSlugMaxLen. Derivation is
// deterministic for a given title; collisions are left to the unique
// constraint on groups.slug.
func DeriveGroupSlug(title string) string {
	s := gosimple.Make(title)
	if len(s) > GroupSlugMaxLen {
		s = s[:GroupSlugMaxLen]
		// never end on the hyphen a mid-word cut can leave behind
		for len(s) > 0 && s[len(s)-1] == '-' {
			s = s[:len(s)-1]
		}
	}
	return s
}

// ValidateGroupSlug validates an explicitly supplied group slug.
func ValidateGroupSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug must not be empty")
	}
	if len(slug) > GroupSlugMaxLen {
		return fmt.Errorf("slug must not exceed %d characters", GroupSlugMaxLen)
	}
	if !groupSlugRegex.MatchString(slug) {
		return fmt.Errorf("slug can only contain letters, numbers, hyphens, and underscores")
	}
	return nil
}
