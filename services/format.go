package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatINR formats an amount in Indian Rupee notation, grouping digits the
// Indian way: the rightmost 3 digits, then pairs (₹1,23,45,678.90). Always
// two decimal places.
func FormatINR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := "₹" + indianGrouping(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// indianGrouping inserts commas into an integer string: the last 3 digits
// stay together, every 2 digits before them form a group.
func indianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	return remaining + "," + result
}

// FormatQuoteDate renders a date the way it appears on quotation documents.
func FormatQuoteDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// FormatQty trims trailing zeros from a quantity so whole numbers render
// without a decimal point.
func FormatQty(qty float64) string {
	s := fmt.Sprintf("%.2f", qty)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
