package parsing

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1,234.56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"12,50", 12.50, true},
		{"3.49", 3.49, true},
		{"$4.99", 4.99, true},
		{"-2.50", -2.50, true},
		{"1,234,567.89", 1234567.89, true},
		// Thousands-only comma is read as a decimal comma. Known ambiguity,
		// kept on purpose.
		{"1,234", 1.234, true},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ExtractAmount(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ExtractAmount(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
