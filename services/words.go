package services

import (
	"math"
	"strings"
)

// AmountToWords converts a rupee amount to Indian English words for the
// cost-summary footer.
// Example: 913183.00 → "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	rupees := int64(math.Round(amount))
	if rupees == 0 {
		return "Zero Rupees Only/-"
	}

	return indianWords(rupees) + " Rupees Only/-"
}

func indianWords(n int64) string {
	var parts []string

	groups := []struct {
		value int64
		label string
	}{
		{10000000, "Crores"},
		{100000, "Lakhs"},
		{1000, "Thousand"},
	}
	for _, g := range groups {
		if n >= g.value {
			parts = append(parts, under100(n/g.value)+" "+g.label)
			n %= g.value
		}
	}

	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+under100(n))
		} else {
			parts = append(parts, under100(n))
		}
	}

	return strings.Join(parts, " ")
}

func under100(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	result := tensWords[n/10]
	if n%10 != 0 {
		result += " " + onesWords[n%10]
	}
	return result
}

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
