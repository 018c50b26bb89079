package services

import (
	"fmt"
	"html"
	"strings"
)

// TemplateBlock is one typed section of a structured document template,
// stored as JSON on the document_templates collection.
type TemplateBlock struct {
	Type    string `json:"type"`
	Content string `json:"content,omitempty"`
}

// BlockKind is the closed set of block types the renderer knows. Unknown
// type tags map to BlockText so a template with a stray tag still renders.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockHeader
	BlockCustomer
	BlockTable
	BlockTotal
	BlockTerms
)

// KindOf maps a template's type tag to its BlockKind. Both the short and
// the long tag spellings are accepted.
func KindOf(blockType string) BlockKind {
	switch strings.ToLower(strings.TrimSpace(blockType)) {
	case "header":
		return BlockHeader
	case "customer", "customer_details":
		return BlockCustomer
	case "table", "equipment_table":
		return BlockTable
	case "total", "cost_summary":
		return BlockTotal
	case "terms", "terms_conditions":
		return BlockTerms
	default:
		return BlockText
	}
}

// RenderBlock renders one template block to an HTML fragment. Every kind
// has a fixed structure; free-text blocks run through placeholder
// substitution against ctx. A block that has nothing to say renders as an
// empty string, never as an error.
func RenderBlock(block TemplateBlock, q Quotation, b CostBreakdown, meta QuoteMeta, ctx map[string]any) string {
	switch KindOf(block.Type) {
	case BlockHeader:
		return renderHeaderBlock(meta)
	case BlockCustomer:
		return renderCustomerBlock(q)
	case BlockTable:
		return renderEquipmentTable(q)
	case BlockTotal:
		return renderCostSummary(q, b)
	case BlockTerms:
		return renderTermsBlock(block.Content)
	default:
		return renderTextBlock(block.Content, ctx)
	}
}

func renderHeaderBlock(meta QuoteMeta) string {
	var sb strings.Builder
	sb.WriteString(`<div class="doc-header">`)
	sb.WriteString(`<div class="company">`)
	fmt.Fprintf(&sb, `<h1>%s</h1>`, html.EscapeString(CompanyName))
	fmt.Fprintf(&sb, `<p class="tagline">%s</p>`, html.EscapeString(CompanyTagline))
	fmt.Fprintf(&sb, `<p>%s</p>`, html.EscapeString(CompanyAddress))
	fmt.Fprintf(&sb, `<p>%s | %s</p>`, html.EscapeString(CompanyPhone), html.EscapeString(CompanyEmail))
	fmt.Fprintf(&sb, `<p>GSTIN: %s</p>`, html.EscapeString(CompanyGSTIN))
	sb.WriteString(`</div>`)
	sb.WriteString(`<div class="quote-meta">`)
	sb.WriteString(`<h2>QUOTATION</h2>`)
	fmt.Fprintf(&sb, `<p>Quote No: <strong>%s</strong></p>`, html.EscapeString(meta.Number))
	fmt.Fprintf(&sb, `<p>Date: %s</p>`, html.EscapeString(meta.Date))
	fmt.Fprintf(&sb, `<p>Valid Until: %s</p>`, html.EscapeString(meta.ValidUntil))
	sb.WriteString(`</div>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderCustomerBlock(q Quotation) string {
	var sb strings.Builder
	sb.WriteString(`<div class="customer-block">`)
	sb.WriteString(`<h3>Bill To</h3>`)
	fmt.Fprintf(&sb, `<p class="customer-name">%s</p>`, escapeOr(q.CustomerName, "N/A"))
	fmt.Fprintf(&sb, `<p>%s</p>`, escapeOr(q.CompanyName, "N/A"))
	fmt.Fprintf(&sb, `<p>%s</p>`, escapeOr(q.Address, "N/A"))
	fmt.Fprintf(&sb, `<p>Phone: %s</p>`, escapeOr(q.Phone, "N/A"))
	fmt.Fprintf(&sb, `<p>Email: %s</p>`, escapeOr(q.Email, "N/A"))
	sb.WriteString(`</div>`)
	return sb.String()
}

// equipmentRow is one line of the equipment table.
type equipmentRow struct {
	Name     string
	Rate     float64
	Days     float64
	Quantity float64
	Amount   float64
}

// equipmentRows builds the table rows from the machine list. When no
// machines are selected but the legacy single-equipment field is set, it
// synthesizes exactly one row whose rate is TotalRent / NumberOfDays.
func equipmentRows(q Quotation) []equipmentRow {
	if len(q.Machines) == 0 {
		if q.SelectedEquipment == "" {
			return nil
		}
		rate := q.TotalRent
		if q.NumberOfDays > 0 {
			rate = q.TotalRent / q.NumberOfDays
		}
		return []equipmentRow{{
			Name:     q.SelectedEquipment,
			Rate:     rate,
			Days:     q.NumberOfDays,
			Quantity: 1,
			Amount:   rate * q.NumberOfDays,
		}}
	}

	rows := make([]equipmentRow, 0, len(q.Machines))
	for _, m := range q.Machines {
		qty := m.Quantity
		if qty == 0 {
			qty = 1
		}
		rows = append(rows, equipmentRow{
			Name:     m.Name,
			Rate:     m.DailyRate,
			Days:     q.NumberOfDays,
			Quantity: qty,
			Amount:   m.DailyRate * q.NumberOfDays * qty,
		})
	}
	return rows
}

func renderEquipmentTable(q Quotation) string {
	var sb strings.Builder
	sb.WriteString(`<table class="equipment-table">`)
	sb.WriteString(`<thead><tr><th>Equipment</th><th>Rate / Day</th><th>Days</th><th>Qty</th><th>Amount</th></tr></thead>`)
	sb.WriteString(`<tbody>`)
	for _, r := range equipmentRows(q) {
		fmt.Fprintf(&sb,
			`<tr><td>%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td><td class="num">%s</td></tr>`,
			html.EscapeString(r.Name), FormatINR(r.Rate), FormatQty(r.Days), FormatQty(r.Quantity), FormatINR(r.Amount))
	}
	sb.WriteString(`</tbody></table>`)
	return sb.String()
}

func renderCostSummary(q Quotation, b CostBreakdown) string {
	rows := []struct {
		label  string
		amount float64
	}{
		{"Working Cost", b.WorkingCost},
		{"Food & Accommodation", b.FoodAccomCost},
		{"Transport", b.TransportCost},
		{"Mobilization / Demobilization", b.MobDemobCost},
		{"Risk Adjustment", b.RiskAdjustment},
		{"Usage Load", b.UsageLoadFactor},
		{"Extra Charges", b.ExtraCharges},
		{"Incidental Charges", b.IncidentalCost},
		{"Other Factors", b.OtherFactorsCost},
	}

	var sb strings.Builder
	sb.WriteString(`<div class="cost-summary">`)
	sb.WriteString(`<h3>Cost Summary</h3>`)
	sb.WriteString(`<table class="cost-table"><tbody>`)
	for _, r := range rows {
		if r.amount == 0 {
			continue
		}
		fmt.Fprintf(&sb, `<tr><td>%s</td><td class="num">%s</td></tr>`, r.label, FormatINR(r.amount))
	}
	fmt.Fprintf(&sb, `<tr class="subtotal-row"><td>Subtotal</td><td class="num">%s</td></tr>`, FormatINR(b.Subtotal))
	if q.IncludeGST {
		fmt.Fprintf(&sb, `<tr><td>GST</td><td class="num">%s</td></tr>`, FormatINR(b.GSTAmount))
	}
	fmt.Fprintf(&sb, `<tr class="total-row"><td>Total</td><td class="num">%s</td></tr>`, FormatINR(b.TotalAmount))
	sb.WriteString(`</tbody></table>`)
	fmt.Fprintf(&sb, `<p class="amount-words">%s</p>`, html.EscapeString(AmountToWords(b.TotalAmount)))
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderTermsBlock(content string) string {
	var sb strings.Builder
	sb.WriteString(`<div class="terms-block">`)
	sb.WriteString(`<h3>Terms &amp; Conditions</h3>`)
	if strings.TrimSpace(content) != "" {
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			fmt.Fprintf(&sb, `<p>%s</p>`, html.EscapeString(line))
		}
	} else {
		sb.WriteString(`<ol>`)
		for _, clause := range DefaultTerms {
			fmt.Fprintf(&sb, `<li>%s</li>`, html.EscapeString(clause))
		}
		sb.WriteString(`</ol>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// renderTextBlock runs the block's content through placeholder substitution
// and emits it as-is. A block without content emits nothing.
func renderTextBlock(content string, ctx map[string]any) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return `<div class="text-block">` + Substitute(content, ctx) + `</div>`
}

func escapeOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return html.EscapeString(value)
}

// DefaultTerms is the standard ten-clause rental terms text used when a
// terms block carries no content of its own.
var DefaultTerms = []string{
	"Rental charges are for the quoted duration only; extensions are billed at the same daily rate.",
	"Mobilization and demobilization charges are payable in addition to rental charges unless itemized above.",
	"Diesel, operator accommodation and site power shall be arranged by the hirer unless itemized above.",
	"The crane will operate only on firm, levelled ground prepared by the hirer.",
	"Working hours are 8 hours per day; overtime is charged pro rata.",
	"Idle time caused by site conditions, weather or statutory stoppage is billed at full rate.",
	"An advance of 50% is payable before equipment movement; balance against monthly bills.",
	"GST is charged extra as applicable on the date of invoice.",
	"Insurance of material being lifted is the hirer's responsibility.",
	"All disputes are subject to Pune jurisdiction.",
}
