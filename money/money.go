// Package money formats monetary values for API responses. Prices come out
// of the parser as float64s; this package rounds and renders them with the
// right number of decimal places for their currency.
package money

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
)

// Amount is a monetary value that marshals as a plain decimal with
// currency-appropriate precision (12.95, not 12.950000762939453).
type Amount struct {
	Value    float64
	Currency *string
}

// MarshalJSON renders the value with the currency's ISO 4217 decimal places.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.*f", DecimalPlaces(a.Currency), a.Value)), nil
}

func currencyFor(code *string) *gomoney.Currency {
	c := gomoney.USD
	if code != nil && strings.TrimSpace(*code) != "" {
		c = strings.ToUpper(*code)
	}
	return gomoney.GetCurrency(c)
}

// DecimalPlaces returns the ISO 4217 decimal places for a currency code
// (USD=2, JPY=0, KWD=3). Nil or unknown codes default to 2.
func DecimalPlaces(currency *string) int {
	c := currencyFor(currency)
	if c == nil {
		return 2
	}
	return c.Fraction
}

// Round rounds a value to its currency's decimal places.
func Round(value float64, currency *string) float64 {
	c := currencyFor(currency)
	code := gomoney.USD
	if c != nil {
		code = c.Code
	}
	return gomoney.NewFromFloat(value, code).Round().AsMajorUnits()
}

// NewAmount rounds value and wraps it for marshaling.
func NewAmount(value float64, currency *string) Amount {
	return Amount{Value: Round(value, currency), Currency: currency}
}

// Ptr is NewAmount for optional values; nil in, nil out.
func Ptr(value *float64, currency *string) *Amount {
	if value == nil {
		return nil
	}
	a := NewAmount(*value, currency)
	return &a
}
