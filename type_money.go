package moneytracker

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// fraction is the number of digits displayed after the decimal point.
const fraction = 2

// plain formats minor units as "1234.50": no grapheme, no thousands separator.
var plain = money.NewFormatter(fraction, ".", "", "", "1")

// digits returns the absolute value of d rounded half-up to two decimals.
func digits(d decimal.Decimal) string {
	minor := d.Abs().Shift(fraction).Round(0).IntPart()
	return plain.Format(minor)
}

// Dollars formats the magnitude of d as "$1234.50". The sign is dropped: a
// transaction amount carries its sign in the income flag.
func Dollars(d decimal.Decimal) string {
	return "$" + digits(d)
}

// BalanceString formats a signed balance as "$1234.50" or "$-450.00".
func BalanceString(d decimal.Decimal) string {
	if d.Round(fraction).IsNegative() {
		return "$-" + digits(d)
	}
	return "$" + digits(d)
}

// ParseAmount parses a user typed amount such as "42.5" or "$42.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	if len(s) > 0 && s[0] == '$' {
		s = s[1:]
	}
	return decimal.NewFromString(s)
}
