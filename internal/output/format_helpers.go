package output

import "github.com/shopspring/decimal"

// FormatQuantity renders a derived quantity honoring the display precision.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatQuantity(d decimal.Decimal, precision int32) string {
	if precision > 0 {
		return d.StringFixed(precision)
	}
	return d.String()
}
