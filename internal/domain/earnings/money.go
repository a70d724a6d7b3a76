package earnings

import "github.com/shopspring/decimal"

var minorPerMajor = decimal.NewFromInt(100)

// Round2 rounds half-up (away from zero) to two places for output.
func Round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// MinorToMajor converts paise/cents to rupees/dollars.
func MinorToMajor(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(minorPerMajor)
}

// MajorToMinor converts a major-unit amount to minor units, rounding half-up.
func MajorToMinor(major decimal.Decimal) int64 {
	return major.Mul(minorPerMajor).Round(0).IntPart()
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
