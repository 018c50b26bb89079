package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// ValidityDays is how long a quotation stays open for acceptance.
const ValidityDays = 15

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%02d-%02d", startYear%100, (startYear+1)%100)
}

// formatQuoteNumber constructs the quote number from its components.
func formatQuoteNumber(fiscalYear string, sequence int) string {
	return fmt.Sprintf("SCS-QT-%s-%03d", fiscalYear, sequence)
}

// GenerateQuoteNumber creates the next quotation number.
// Format: SCS-QT-{fiscal_year}-{sequence}, sequence per fiscal year.
func GenerateQuoteNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	fiscalYear := GetFiscalYear(now)
	prefix := fmt.Sprintf("SCS-QT-%s-", fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"quotations",
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix},
	)
	if err != nil {
		return "", fmt.Errorf("count quotations for %s: %w", fiscalYear, err)
	}

	return formatQuoteNumber(fiscalYear, len(existing)+1), nil
}

// NewQuoteMeta computes the document metadata for a quotation issued at the
// given time. Validity runs ValidityDays from the quote date.
func NewQuoteMeta(number string, issuedAt time.Time) QuoteMeta {
	return QuoteMeta{
		Number:     number,
		Date:       FormatQuoteDate(issuedAt),
		ValidUntil: FormatQuoteDate(issuedAt.AddDate(0, 0, ValidityDays)),
	}
}
