// Package money converts between decimal amounts and the minor units stored in Postgres.
package money

import "github.com/shopspring/decimal"

const scale = 2

var hundred = decimal.NewFromInt(100)

func ToMinor(d decimal.Decimal) int64 {
	return d.Shift(scale).Round(0).IntPart()
}

func FromMinor(v int64) decimal.Decimal {
	return decimal.New(v, -scale)
}

// Percent returns pct percent of d rounded to minor units.
func Percent(d decimal.Decimal, pct int64) decimal.Decimal {
	return d.Mul(decimal.NewFromInt(pct)).Div(hundred).Round(scale)
}

// HasMinorScale reports whether d is a whole number of minor units.
func HasMinorScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(scale))
}

func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func FromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}
