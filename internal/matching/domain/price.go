package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceUnknown is the sentinel returned when no usable number exists in a
// price text. It is distinct in meaning from an actual price of zero: the
// budget filter excludes unknown prices instead of letting them pass.
const PriceUnknown = 0

// minPlausiblePrice is the smallest value (만원) accepted by the relaxed
// digit-run scan. Single-digit runs below it are usually counts or labels,
// not prices.
const minPlausiblePrice = 10

var (
	bareNumberPattern  = regexp.MustCompile(`^\d{2,4}$`)
	simpleRangePattern = regexp.MustCompile(`^(\d+)~(\d+)$`)
	digitRunPattern    = regexp.MustCompile(`\d{2,4}`)
	anyDigitPattern    = regexp.MustCompile(`\d+`)
	priceInTextPattern = regexp.MustCompile(`(\d+\.?\d*)(?:~(\d+\.?\d*))?`)
)

// MinPrice extracts the minimum price in 만원 units from a free-form price
// text. Vendor operators enter prices as a bare number ("130"), a range
// ("250~280") or a semicolon list of labeled sub-items
// ("본식 250~280;촬영 190~250"), so the extraction degrades through a chain
// of progressively looser pattern attempts instead of rejecting input.
func MinPrice(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PriceUnknown
	}

	// Tier 1: a bare integer of plausible magnitude.
	if bareNumberPattern.MatchString(trimmed) {
		n, err := strconv.Atoi(trimmed)
		if err == nil {
			return n
		}
	}

	// Tier 2: a simple "A~B" range.
	if m := simpleRangePattern.FindStringSubmatch(trimmed); m != nil {
		low, errLow := strconv.Atoi(m[1])
		high, errHigh := strconv.Atoi(m[2])
		if errLow == nil && errHigh == nil {
			if high < low {
				return high
			}
			return low
		}
	}

	// Tier 3: scan for all 2-4 digit runs, labels are noise.
	if runs := digitRunPattern.FindAllString(trimmed, -1); len(runs) > 0 {
		return minOfRuns(runs, 0)
	}

	// Tier 4: relaxed scan, any digit run, but only plausible values.
	if runs := anyDigitPattern.FindAllString(trimmed, -1); len(runs) > 0 {
		if min := minOfRuns(runs, minPlausiblePrice); min != PriceUnknown {
			return min
		}
	}

	return PriceUnknown
}

// minOfRuns converts digit runs and returns the minimum value at or above
// floor. Returns PriceUnknown when nothing qualifies.
func minOfRuns(runs []string, floor int) int {
	min := PriceUnknown
	for _, run := range runs {
		n, err := strconv.Atoi(run)
		if err != nil || n < floor {
			continue
		}
		if min == PriceUnknown || n < min {
			min = n
		}
	}
	return min
}

// FormatPrice renders a stored price text (만원 units) as a human-facing
// currency string. Both the single-value and the min~max range form are
// handled; anything unparseable renders as an empty string.
//
//	"130"     -> "1,300,000 원"
//	"130~140" -> "1,300,000~1,400,000 원"
//	"1.3"     -> "13,000 원"
func FormatPrice(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if strings.Contains(trimmed, "~") {
		parts := strings.SplitN(trimmed, "~", 2)
		low := formatSinglePrice(strings.TrimSpace(parts[0]))
		high := formatSinglePrice(strings.TrimSpace(parts[1]))
		if low == "" || high == "" {
			return ""
		}
		return low + "~" + high + " 원"
	}

	single := formatSinglePrice(trimmed)
	if single == "" {
		return ""
	}
	return single + " 원"
}

// FormatMinPrice renders only the lower bound of a price text, for compact
// list display.
//
//	"130~140" -> "1,300,000 원"
func FormatMinPrice(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if idx := strings.Index(trimmed, "~"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}

	single := formatSinglePrice(trimmed)
	if single == "" {
		return ""
	}
	return single + " 원"
}

// FormatOptionPrice formats an add-on option price. An empty input means
// the vendor does not offer the option, rendered as an empty string.
func FormatOptionPrice(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return FormatPrice(raw)
}

// FormatPriceInText replaces every number (single or range, decimals
// allowed) inside a mixed label+price text with its formatted form while
// leaving the labels untouched.
//
//	"본식 250~280" -> "본식 2,500,000~2,800,000 원"
func FormatPriceInText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	return priceInTextPattern.ReplaceAllStringFunc(text, func(match string) string {
		m := priceInTextPattern.FindStringSubmatch(match)
		low := formatSinglePrice(m[1])
		if low == "" {
			return match
		}
		if m[2] != "" {
			high := formatSinglePrice(m[2])
			if high == "" {
				return match
			}
			return low + "~" + high + " 원"
		}
		return low + " 원"
	})
}

// ParseOtherOptions splits a semicolon-delimited free text of unpriced
// options into individual lines.
func ParseOtherOptions(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ";")
	options := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			options = append(options, part)
		}
	}
	return options
}

// formatSinglePrice scales one numeric text by 10,000 and adds thousands
// separators. Decimal inputs like "1.3" are accepted.
func formatSinglePrice(raw string) string {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}
	return groupThousands(int64(math.Round(price * 10000)))
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
