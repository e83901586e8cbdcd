package parsing

import (
	"reflect"
	"testing"
)

func TestParseFullReceipt(t *testing.T) {
	text := `Milk 3.49
Bread 2.10
Member Savings -0.50
Subtotal 5.59
Tax 0.45
Total 6.04`

	result := Parse(text)

	if len(result.Items) != 2 {
		t.Fatalf("got %d items, want 2: %+v", len(result.Items), result.Items)
	}
	if result.Items[0].Name != "Milk" || result.Items[0].Price != 3.49 {
		t.Errorf("item 0 = %+v, want Milk 3.49", result.Items[0])
	}
	if result.Items[1].Name != "Bread" || result.Items[1].Price != 2.10 {
		t.Errorf("item 1 = %+v, want Bread 2.10", result.Items[1])
	}

	if result.Totals.Subtotal == nil || *result.Totals.Subtotal != 5.59 {
		t.Errorf("subtotal = %v, want 5.59", result.Totals.Subtotal)
	}
	if result.Totals.Tax == nil || *result.Totals.Tax != 0.45 {
		t.Errorf("tax = %v, want 0.45", result.Totals.Tax)
	}
	if result.Totals.Total == nil || *result.Totals.Total != 6.04 {
		t.Errorf("total = %v, want 6.04", result.Totals.Total)
	}
}

func TestParseDiscardPrecedence(t *testing.T) {
	// A discount line contributes neither an item nor a total, even though
	// it carries a valid amount and the word "savings" could look like noise
	// next to a total keyword.
	for _, text := range []string{
		"Member Savings -2.50",
		"Store Coupon 1.00",
		"Forl Store 3.00",
		"Department Savings Total 4.00",
	} {
		result := Parse(text)
		if len(result.Items) != 0 {
			t.Errorf("Parse(%q) produced items %+v, want none", text, result.Items)
		}
		if result.Totals.Subtotal != nil || result.Totals.Tax != nil || result.Totals.Total != nil {
			t.Errorf("Parse(%q) produced totals %+v, want none", text, result.Totals)
		}
	}
}

func TestParseTotalsOverwrite(t *testing.T) {
	result := Parse("Total 45.00\nThank you\nTotal 47.25 Paid")
	if result.Totals.Total == nil || *result.Totals.Total != 47.25 {
		t.Fatalf("total = %v, want 47.25 (last match wins)", result.Totals.Total)
	}
}

func TestParseNameRecoveryFromPreviousLine(t *testing.T) {
	result := Parse("Bananas\n2.99")
	if len(result.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(result.Items))
	}
	if result.Items[0].Name != "Bananas" || result.Items[0].Price != 2.99 {
		t.Errorf("item = %+v, want Bananas 2.99", result.Items[0])
	}
}

func TestParseNameFallsBackToPlaceholder(t *testing.T) {
	result := Parse("2.99")
	if len(result.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(result.Items))
	}
	if result.Items[0].Name != "Item" {
		t.Errorf("name = %q, want %q", result.Items[0].Name, "Item")
	}
}

func TestParseRightmostAmountWins(t *testing.T) {
	result := Parse("Widget 3 @ 1.00 3.00")
	if len(result.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(result.Items))
	}
	if result.Items[0].Price != 3.00 {
		t.Errorf("price = %v, want 3.00 (last amount on the line)", result.Items[0].Price)
	}
}

func TestParseTotalsKeywordOrder(t *testing.T) {
	// "sub total" also contains "total"; the subtotal category is checked
	// first so the line lands there.
	result := Parse("Sub Total 5.59")
	if result.Totals.Subtotal == nil || *result.Totals.Subtotal != 5.59 {
		t.Errorf("subtotal = %v, want 5.59", result.Totals.Subtotal)
	}
	if result.Totals.Total != nil {
		t.Errorf("total = %v, want nil", result.Totals.Total)
	}
}

func TestParseLinesWithoutAmounts(t *testing.T) {
	result := Parse("CORNER GROCERY\n123 Main St\nThank you for shopping\n\nSubtotal")
	if len(result.Items) != 0 {
		t.Errorf("items = %+v, want none", result.Items)
	}
	if result.Totals.Subtotal != nil {
		t.Errorf("subtotal = %v, want nil without an amount", result.Totals.Subtotal)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "   \n \t \n"} {
		result := Parse(text)
		if len(result.Items) != 0 {
			t.Errorf("Parse(%q) items = %+v, want empty", text, result.Items)
		}
		if result.Totals != (Totals{}) {
			t.Errorf("Parse(%q) totals = %+v, want empty", text, result.Totals)
		}
	}
}

func TestParseKeepsRawLine(t *testing.T) {
	result := Parse("Milk! 3.49")
	if len(result.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(result.Items))
	}
	if result.Items[0].Raw != "Milk! 3.49" {
		t.Errorf("raw = %q, want the original trimmed line", result.Items[0].Raw)
	}
	if result.Items[0].Name != "Milk" {
		t.Errorf("name = %q, want punctuation stripped", result.Items[0].Name)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	text := "Milk 3.49\nBread 2.10\nSubtotal 5.59\nTotal 6.04"
	first := Parse(text)
	second := Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestParseNormalizesCurrencyGlyphs(t *testing.T) {
	result := Parse("Croissant €2.40")
	if len(result.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(result.Items))
	}
	if result.Items[0].Price != 2.40 {
		t.Errorf("price = %v, want 2.40", result.Items[0].Price)
	}
	if result.Items[0].Name != "Croissant" {
		t.Errorf("name = %q, want Croissant", result.Items[0].Name)
	}
}
