package parsing

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Milk 3.49", "Milk 3.49"},
		{"bullets become hyphens", "• Coupon · Applied", "- Coupon - Applied"},
		{"currency glyphs fold to dollar", "€5.00 £2.10 ¥300.00", "$5.00 $2.10 $300.00"},
		{"curly quotes straightened", "Joe’s “Deli”", "Joe's 'Deli'"},
		{"ligature glyphs deleted", "Waﬀle Muﬃn", "Wale Mun"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
