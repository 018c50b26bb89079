package services

// Company identity printed on every document. Hardcoded for now; moving it
// into a settings collection is a data-model change, not an engine change.
const (
	CompanyName    = "Shakti Crane Services Pvt. Ltd."
	CompanyTagline = "Crane Rental & Heavy Lifting Solutions"
	CompanyAddress = "Plot 14, Transport Nagar, Pune 411018, Maharashtra"
	CompanyPhone   = "+91 98220 44180"
	CompanyEmail   = "rentals@shakticranes.in"
	CompanyGSTIN   = "27AAECS9917B1ZV"
)

// QuoteMeta is the per-render document metadata: quote number, quote date
// and validity date, computed once per render, not per block.
type QuoteMeta struct {
	Number     string
	Date       string
	ValidUntil string
}

// BuildVariableContext assembles the placeholder context for one render.
// Amounts enter pre-formatted with FormatINR; the substitution engine itself
// does no currency or locale formatting.
func BuildVariableContext(q Quotation, meta QuoteMeta, b CostBreakdown) map[string]any {
	return map[string]any{
		"company": map[string]any{
			"name":    CompanyName,
			"tagline": CompanyTagline,
			"address": CompanyAddress,
			"phone":   CompanyPhone,
			"email":   CompanyEmail,
			"gstin":   CompanyGSTIN,
		},
		"customer": map[string]any{
			"name":    q.CustomerName,
			"company": q.CompanyName,
			"address": q.Address,
			"phone":   q.Phone,
			"email":   q.Email,
		},
		"quote": map[string]any{
			"number":     meta.Number,
			"date":       meta.Date,
			"validUntil": meta.ValidUntil,
		},
		"equipment": map[string]any{
			"name":  equipmentSummary(q),
			"days":  FormatQty(q.NumberOfDays),
			"hours": FormatQty(q.WorkingHours),
		},
		"cost": map[string]any{
			"working":  FormatINR(b.WorkingCost),
			"subtotal": FormatINR(b.Subtotal),
			"gst":      FormatINR(b.GSTAmount),
			"total":    FormatINR(b.TotalAmount),
			"words":    AmountToWords(b.TotalAmount),
		},
	}
}

// equipmentSummary names the quoted equipment for free-text use: the machine
// names joined, or the legacy single-equipment field.
func equipmentSummary(q Quotation) string {
	if len(q.Machines) == 0 {
		return q.SelectedEquipment
	}
	names := make([]string, 0, len(q.Machines))
	for _, m := range q.Machines {
		names = append(names, m.Name)
	}
	result := names[0]
	for _, n := range names[1:] {
		result += ", " + n
	}
	return result
}
