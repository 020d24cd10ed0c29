package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseDisplayPrice converts a hand-authored display price ("£1,200.50")
// into pence. Every non-digit, non-decimal-point rune is dropped, which
// covers the currency symbol and thousands separators. This is the
// single parser for display prices; cart totals, checkout lines and email
// summaries must all go through it so they cannot drift apart.
func ParseDisplayPrice(display string) int64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	pounds, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(pounds * 100))
}

// FormatPence renders pence as a display amount: "£45" or "£45.50".
func FormatPence(pence int64) string {
	if pence%100 == 0 {
		return fmt.Sprintf("£%d", pence/100)
	}
	return fmt.Sprintf("£%.2f", float64(pence)/100)
}
