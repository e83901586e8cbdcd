package parsing

import (
	"regexp"
	"strings"
)

// amountPattern matches a plausible currency amount with cents: 1-3 digits,
// optionally followed by 3-digit groups split by "." or ",", ending in a
// separator and exactly two digits.
var amountPattern = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})`)

// nameStripPattern removes everything but word characters, hyphen,
// ampersand, period, and whitespace when recovering an item name.
var nameStripPattern = regexp.MustCompile(`[^\w\-&.\s]`)

// discardKeywords flags discount/membership/savings lines, which must never
// surface as items or totals. "forl store" is a garbled OCR rendering that
// shows up on real scans; it is matched literally on purpose.
var discardKeywords = []string{
	"member",
	"savings",
	"save",
	"coupon",
	"discount",
	"redeem",
	"additional discounts",
	"department savings",
	"forl store",
	"store coupon",
}

const (
	keySubtotal = "subtotal"
	keyTax      = "tax"
	keyTotal    = "total"
)

// totalsKeywords maps each totals category to the phrases that identify it.
// Categories are checked top to bottom and the first hit wins, so a line
// containing both "subtotal" and "total" is recorded as a subtotal.
var totalsKeywords = []struct {
	key     string
	phrases []string
}{
	{keySubtotal, []string{"subtotal", "sub total"}},
	{keyTax, []string{"tax"}},
	{keyTotal, []string{"total", "amount due", "amount paid", "balance due", "grand total"}},
}

// lineClass is what a single line contributes. At most one of discard,
// totalKey, or item is set; the classifier evaluates them in that fixed
// priority order.
type lineClass struct {
	discard  bool
	totalKey string
	amount   float64
	item     *Item
}

// classifyLine decides what one normalized, trimmed line contributes to the
// parse. prev is the preceding line, consulted only when the amount occupies
// the whole line and the name has to be recovered from context.
func classifyLine(line, prev string) lineClass {
	lc := strings.ToLower(line)

	// Rightmost amount wins: receipts often print quantity and unit price
	// before the line total.
	matches := amountPattern.FindAllString(line, -1)
	var rawAmount string
	if len(matches) > 0 {
		rawAmount = matches[len(matches)-1]
	}
	amount, ok := ExtractAmount(rawAmount)

	for _, keyword := range discardKeywords {
		if strings.Contains(lc, keyword) {
			return lineClass{discard: true}
		}
	}

	if ok {
		for _, group := range totalsKeywords {
			for _, phrase := range group.phrases {
				if strings.Contains(lc, phrase) {
					return lineClass{totalKey: group.key, amount: amount}
				}
			}
		}

		name := strings.TrimSpace(nameStripPattern.ReplaceAllString(strings.Replace(line, rawAmount, "", 1), ""))
		if name == "" {
			name = strings.TrimSpace(nameStripPattern.ReplaceAllString(prev, ""))
		}
		if name == "" {
			name = "Item"
		}
		return lineClass{item: &Item{
			Name:        name,
			Price:       amount,
			Assignments: []string{},
			Raw:         line,
		}}
	}

	// No amount anywhere on the line: header, footer, or plain noise.
	return lineClass{}
}
