// Package format holds display formatting helpers for prices, volumes and
// share counts. Pure string building, no market logic.
package format

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPriceCents renders an integer cent price, e.g. 65 -> "65¢".
func FormatPriceCents(cents int) string {
	return strconv.Itoa(cents) + "¢"
}

// FormatPriceDecimal renders a decimal price as cents with up to one
// fractional digit, e.g. 0.652 -> "65.2¢", 0.65 -> "65¢".
func FormatPriceDecimal(price float64) string {
	cents := price * 100
	if cents == math.Trunc(cents) {
		return strconv.FormatFloat(cents, 'f', 0, 64) + "¢"
	}
	return strconv.FormatFloat(math.Round(cents*10)/10, 'f', -1, 64) + "¢"
}

// FormatCurrency renders a dollar amount with thousands separators and two
// decimal places, e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount)
	negative := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	parts := strings.SplitN(fixed, ".", 2)
	grouped := groupThousands(parts[0])

	out := "$" + grouped + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// FormatVolume renders a volume compactly: "$912", "$1.2k", "$3.4m", "$1.1b".
func FormatVolume(volume float64) string {
	abs := math.Abs(volume)
	switch {
	case abs >= 1e9:
		return "$" + trimZeros(volume/1e9) + "b"
	case abs >= 1e6:
		return "$" + trimZeros(volume/1e6) + "m"
	case abs >= 1e3:
		return "$" + trimZeros(volume/1e3) + "k"
	default:
		return "$" + strconv.FormatFloat(math.Round(volume), 'f', 0, 64)
	}
}

// FormatShares renders a share count with separators and up to two decimals,
// e.g. 1234.5 -> "1,234.5 shares".
func FormatShares(size float64) string {
	d := decimal.NewFromFloat(size).Round(2)
	s := d.String()

	parts := strings.SplitN(s, ".", 2)
	out := groupThousands(parts[0])
	if len(parts) == 2 {
		out += "." + parts[1]
	}
	return out + " shares"
}

func trimZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
