// Package parsing turns noisy OCR-derived receipt text into structured
// purchase items and labeled totals. The pipeline is a fixed rule-based
// heuristic: normalize OCR artifacts, split into lines, and classify each
// line as discount noise, a totals line, or an item with an inline price.
// It is a pure function of its input and safe for concurrent use.
package parsing

import "strings"

// Item is one purchased line recovered from the receipt.
type Item struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Assignments []string `json:"assignments"`
	Raw         string   `json:"raw"`
}

// Totals holds the labeled aggregate amounts detected on the receipt. A nil
// field means no matching line was found. Receipts often footer-repeat their
// totals, so a later matching line overwrites an earlier one.
type Totals struct {
	Subtotal *float64 `json:"subtotal,omitempty"`
	Tax      *float64 `json:"tax,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

func (t *Totals) record(key string, amount float64) {
	v := amount
	switch key {
	case keySubtotal:
		t.Subtotal = &v
	case keyTax:
		t.Tax = &v
	case keyTotal:
		t.Total = &v
	}
}

// Result is the outcome of interpreting one block of receipt text.
type Result struct {
	Items  []Item `json:"items"`
	Totals Totals `json:"totals"`
}

// Parse interprets a block of receipt text, OCR-produced or hand-edited; the
// two are indistinguishable here. It never fails: degenerate input yields an
// empty item list and empty totals. Each call rebuilds the result from
// scratch.
func Parse(text string) Result {
	result := Result{Items: []Item{}}

	var lines []string
	for _, line := range strings.Split(Normalize(text), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	for i, line := range lines {
		// The previous line is the only cross-line context: item names
		// sometimes land on the line above their price.
		var prev string
		if i > 0 {
			prev = lines[i-1]
		}

		c := classifyLine(line, prev)
		switch {
		case c.discard:
		case c.totalKey != "":
			result.Totals.record(c.totalKey, c.amount)
		case c.item != nil:
			result.Items = append(result.Items, *c.item)
		}
	}

	return result
}
