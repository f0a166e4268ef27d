package report

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)

	maxGrouped = decimal.NewFromInt(math.MaxInt64)
)

// Money formats an amount with thousands separators and the euro sign. The
// digits come from the decimal itself; only the integer part is grouped.
func Money(v decimal.Decimal, places int) string {
	rounded := v.Round(int32(places))
	abs := rounded.Abs()

	digits := abs.StringFixed(int32(places))
	if abs.LessThanOrEqual(maxGrouped) {
		_, frac, _ := strings.Cut(digits, ".")
		digits = printer.Sprintf("%d", abs.IntPart())
		if frac != "" {
			digits += "." + frac
		}
	}

	if rounded.IsNegative() {
		digits = "-" + digits
	}
	return digits + " €"
}

// Percent formats a fraction (0.07) as a percentage (7.00%).
func Percent(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// PercentValue formats a value already expressed in percent (7 = 7%).
func PercentValue(pct decimal.Decimal) string {
	return pct.String() + "%"
}
