package money

import (
	"encoding/json"
	"testing"
)

func TestRound(t *testing.T) {
	usd := "USD"
	jpy := "JPY"
	tests := []struct {
		value    float64
		currency *string
		want     float64
	}{
		{21.95, &usd, 21.95},
		{22.0, &usd, 22.0},
		{12.950000762939453, &usd, 12.95},
		{6.04, &usd, 6.04},
		{21.95, nil, 21.95},
		{300.4, &jpy, 300},
	}
	for _, tt := range tests {
		if got := Round(tt.value, tt.currency); got != tt.want {
			t.Errorf("Round(%v, %v) = %v, want %v", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	usd := "USD"
	tests := []struct {
		value float64
		want  string
	}{
		{21.95, "21.95"},
		{22.0, "22.00"},
		{6.04, "6.04"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(Amount{Value: tt.value, Currency: &usd})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if got := string(b); got != tt.want {
			t.Errorf("Marshal(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestPtr(t *testing.T) {
	if got := Ptr(nil, nil); got != nil {
		t.Errorf("Ptr(nil) = %v, want nil", got)
	}
	v := 5.59
	got := Ptr(&v, nil)
	if got == nil || got.Value != 5.59 {
		t.Errorf("Ptr(5.59) = %v, want Amount{5.59}", got)
	}
}
