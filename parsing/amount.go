package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumericPattern = regexp.MustCompile(`[^0-9.\-]`)

// ExtractAmount resolves a candidate amount string to a numeric value.
// The candidate is text the classifier already isolated as a probable
// amount: digits, separators, maybe a leading minus, maybe a stray
// currency glyph.
//
// When both "," and "." appear, whichever occurs later is taken as the
// decimal point and the other is stripped as a thousands separator. With a
// single separator kind, commas become decimal points; a thousands-only
// comma amount like "1,234" is therefore read as 1.234. That ambiguity is
// inherited from the product behavior on real scans and is deliberately
// left as is.
//
// Returns ok=false when the candidate is empty or nothing parseable
// remains after stripping.
func ExtractAmount(candidate string) (float64, bool) {
	if candidate == "" {
		return 0, false
	}

	s := candidate
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		if strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}

	s = nonNumericPattern.ReplaceAllString(s, "")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
