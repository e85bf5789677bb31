package services

import (
	"fmt"
	"math"
	"strings"
)

// FormatUSD formats a float64 amount as US currency with thousands
// separators and exactly 2 decimal places (e.g. $12,345.60). All rounding
// in this package happens here and in Round2, never inside calculations.
func FormatUSD(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// Round2 rounds to 2 decimal places for numeric export cells.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatHours renders an hours quantity with 2 decimals, or blank for zero.
func FormatHours(h float64) string {
	if h == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", h)
}
