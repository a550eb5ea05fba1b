package common

import (
	"strconv"
	"strings"
)

// ParsePositiveInt parses a positive integer, reporting whether the input
// held one. Blank, malformed and non-positive inputs yield the fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}
