package parsing

import "regexp"

// OCR engines leak presentation-form ligature glyphs (U+FB00-U+FB4F) into
// otherwise plain text; they carry no information we can use, so they are
// dropped outright.
var ligaturePattern = regexp.MustCompile(`[\x{FB00}-\x{FB4F}]`)

// Bullets and middle dots usually mark discount lines on scanned receipts.
// Keyword matching downstream expects a hyphen there.
var bulletPattern = regexp.MustCompile("[•·]")

// All currency is treated uniformly; the glyph only needs to survive as a
// recognizable symbol.
var currencyPattern = regexp.MustCompile("[€£¥]")

var curlyQuotePattern = regexp.MustCompile("[‘’“”]")

// Normalize cleans OCR artifacts out of raw receipt text: presentation-form
// ligatures are deleted, bullet glyphs become hyphens, non-dollar currency
// glyphs become "$", and typographic quotes become straight apostrophes.
// No other characters are altered. Empty input yields an empty string.
func Normalize(text string) string {
	s := ligaturePattern.ReplaceAllString(text, "")
	s = bulletPattern.ReplaceAllString(s, "-")
	s = currencyPattern.ReplaceAllString(s, "$")
	s = curlyQuotePattern.ReplaceAllString(s, "'")
	return s
}
