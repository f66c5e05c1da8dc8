package validation_test

import (
	"testing"

	"github.com/avelins/currency_exchange_app/internal/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidCurrencyCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{"uppercase three letters", "USD", true},
		{"another valid code", "JPY", true},
		{"lowercase", "usd", false},
		{"mixed case", "UsD", false},
		{"too short", "US", false},
		{"too long", "USDT", false},
		{"empty", "", false},
		{"digits", "U5D", false},
		{"non-ascii letters", "ÄBC", false},
		{"cyrillic uppercase", "РУБ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.IsValidCurrencyCode(tt.code))
		})
	}
}

func TestIsValidCurrencyName(t *testing.T) {
	tests := []struct {
		name    string
		curName string
		valid   bool
	}{
		{"single word", "Euro", true},
		{"two words", "US Dollar", true},
		{"second word lowercase", "Pound sterling", true},
		{"empty", "", false},
		{"starts lowercase", "euro", false},
		{"leading space", " Euro", false},
		{"trailing space", "Euro ", false},
		{"double space", "US  Dollar", false},
		{"contains digit", "Euro2", false},
		{"contains punctuation", "U.S. Dollar", false},
		{"non-ascii", "Российский Рубль", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.IsValidCurrencyName(tt.curName))
		})
	}
}

func TestIsValidCurrencySign(t *testing.T) {
	tests := []struct {
		name  string
		sign  string
		valid bool
	}{
		{"dollar", "$", true},
		{"euro", "€", true},
		{"yen", "¥", true},
		{"pound", "£", true},
		{"rupee", "₹", true},
		{"empty", "", false},
		{"two symbols", "$$", false},
		{"plain letter", "D", false},
		{"digit", "1", false},
		{"non-currency symbol", "%", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.IsValidCurrencySign(tt.sign))
		})
	}
}

func TestIsValidRate(t *testing.T) {
	tests := []struct {
		name  string
		rate  string
		valid bool
	}{
		{"integer", "150", true},
		{"two places", "0.90", true},
		{"six places boundary", "0.000001", true},
		{"seven places", "0.0000001", false},
		{"seven places on big value", "1.2345678", false},
		{"zero", "0", false},
		{"negative", "-1.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := decimal.NewFromString(tt.rate)
			assert.NoError(t, err)
			assert.Equal(t, tt.valid, validation.IsValidRate(rate))
		})
	}
}

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		valid  bool
	}{
		{"integer", "10", true},
		{"fractional", "10.55", true},
		{"zero", "0", false},
		{"negative", "-3", false},
		{"not a number", "ten", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.IsValidAmount(tt.amount))
		})
	}
}
