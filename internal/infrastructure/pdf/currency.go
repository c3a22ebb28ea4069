package pdf

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const invalidAmount = "N/A"

// FormatCurrency formats an amount as US dollars with two decimals and
// thousands separators, e.g. 1234.5 -> "$1,234.50" and -3 -> "-$3.00".
// Rounding is half away from zero and happens only here. Non-finite amounts
// render as invalidAmount.
func FormatCurrency(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return invalidAmount
	}
	d := decimal.NewFromFloat(amount).Round(2)

	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.Grow(len(fixed) + len(intPart)/3 + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
