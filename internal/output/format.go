// Package output renders calculation results for the CLI and for reports.
// Rounding to two decimal places happens here, exactly once per figure;
// calculators hand over full-precision decimals.
package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatGYD renders an amount in Guyana dollars: rounded half-up to two
// places, thousands-grouped, prefixed with the GY$ symbol.
func FormatGYD(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	formatted := "GY$" + groupThousands(whole) + "." + frac
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatPercent renders a fractional rate as a percentage, e.g. 0.14 as
// "14.00%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
