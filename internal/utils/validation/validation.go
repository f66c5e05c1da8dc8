// Package validation holds the structural rules for currency and rate
// entities. All checks are pure predicates; turning a false result into a
// user-facing error is the caller's job.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// RateFractionalDigits is the maximum number of digits allowed after the
// decimal point in a stored exchange rate.
const RateFractionalDigits = 6

// IsValidCurrencyCode reports whether code is exactly 3 uppercase ASCII letters.
func IsValidCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// IsValidCurrencyName reports whether name is non-empty, consists of ASCII
// alphabetic words separated by single spaces, and starts with an uppercase
// letter. Words after the first may be any case ("US dollar" is accepted,
// "us Dollar" is not).
func IsValidCurrencyName(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for _, word := range strings.Split(name, " ") {
		// Empty words mean leading/trailing or doubled spaces.
		if word == "" {
			return false
		}
		for i := 0; i < len(word); i++ {
			if !isASCIILetter(word[i]) {
				return false
			}
		}
	}
	return true
}

// IsValidCurrencySign reports whether sign is exactly one Unicode code point
// whose general category is Currency Symbol (Sc).
func IsValidCurrencySign(sign string) bool {
	r, size := utf8.DecodeRuneInString(sign)
	if r == utf8.RuneError || size != len(sign) {
		return false
	}
	return unicode.Is(unicode.Sc, r)
}

// IsValidRate reports whether rate is strictly positive and has at most
// RateFractionalDigits digits after the decimal point. The check runs on the
// exact decimal value, so 0.0000001 is rejected even though it would survive
// a float64 round trip.
func IsValidRate(rate decimal.Decimal) bool {
	return rate.IsPositive() && rate.Equal(rate.Truncate(RateFractionalDigits))
}

// IsValidAmount reports whether amount parses as a decimal number greater
// than zero.
func IsValidAmount(amount string) bool {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
