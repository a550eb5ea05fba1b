package common

import (
	"strings"

	matching "github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

// CanonicalCategory normalises category aliases, English and Korean, into
// the canonical vendor category. Returns the empty category for unknown or
// blank input; blank means "all categories" to the list endpoints.
func CanonicalCategory(input string) (matching.Category, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", true
	}

	switch strings.ToLower(trimmed) {
	case "studio", "studios":
		return matching.CategoryStudio, true
	case "dress", "dresses":
		return matching.CategoryDress, true
	case "makeup", "make-up":
		return matching.CategoryMakeup, true
	}

	switch trimmed {
	case "스튜디오":
		return matching.CategoryStudio, true
	case "드레스":
		return matching.CategoryDress, true
	case "메이크업":
		return matching.CategoryMakeup, true
	}

	return "", false
}
