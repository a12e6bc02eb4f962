// Package valueobject provides small pure helpers shared across layers:
// Brazilian Real display formatting and WhatsApp phone masking.
package valueobject

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrencyInput renders a non-negative cents value as the masked
// "R$ X.XXX,YY" display text.
func FormatCurrencyInput(cents int64) string {
	if cents < 0 {
		cents = 0
	}
	reais := cents / 100
	centavos := cents % 100

	intPart := formatThousands(reais)

	var b strings.Builder
	b.WriteString("R$ ")
	b.WriteString(intPart)
	b.WriteByte(',')
	if centavos < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(centavos, 10))
	return b.String()
}

// DecimalToCents converts a decimal amount in reais to whole cents,
// rounding half away from zero.
func DecimalToCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// FormatCurrency renders a decimal amount as "R$ X.XXX,YY".
func FormatCurrency(amount decimal.Decimal) string {
	return FormatCurrencyInput(DecimalToCents(amount))
}

// formatThousands renders a non-negative integer with "." as the thousands
// separator.
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
