package services

import (
	"testing"
	"time"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"small integer", 5, "₹5.00"},
		{"with decimals", 42.50, "₹42.50"},
		{"hundreds", 999.99, "₹999.99"},
		{"thousands", 1234.56, "₹1,234.56"},
		{"ten thousands", 12345.00, "₹12,345.00"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"ten lakhs", 1234567.89, "₹12,34,567.89"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"negative lakhs", -250000.50, "-₹2,50,000.50"},
		{"exact thousands boundary", 1000, "₹1,000.00"},
		{"exact lakh boundary", 100000, "₹1,00,000.00"},
		{"exact crore boundary", 10000000, "₹1,00,00,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.input); got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatQuoteDate(t *testing.T) {
	d := time.Date(2026, time.August, 1, 10, 30, 0, 0, time.UTC)
	if got := FormatQuoteDate(d); got != "01 Aug 2026" {
		t.Errorf("FormatQuoteDate = %q, want 01 Aug 2026", got)
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{30, "30"},
		{2.5, "2.5"},
		{1.25, "1.25"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatQty(tt.input); got != tt.expect {
			t.Errorf("FormatQty(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
