package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates a PDF document for a quotation using maroto/v2.
// This is the native PDF path for downloads; the HTML renderer in
// document.go stays the source of truth for previews.
func GenerateQuotePDF(q Quotation, b CostBreakdown, meta QuoteMeta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, meta)
	addQuoteCustomer(m, q)
	addQuoteEquipmentTable(m, q)
	addQuoteCostSummary(m, q, b)
	addQuoteTerms(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, meta QuoteMeta) {
	m.AddRows(
		row.New(10).Add(
			col.New(7).Add(
				text.New(CompanyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(5).Add(
				text.New("QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(7).Add(
				text.New(fmt.Sprintf("%s | %s", CompanyAddress, CompanyEmail), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Quote #: %s", meta.Number), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(7).Add(
				text.New(fmt.Sprintf("GSTIN: %s | %s", CompanyGSTIN, CompanyPhone), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(5).Add(
				text.New(fmt.Sprintf("Date: %s | Valid Until: %s", meta.Date, meta.ValidUntil), props.Text{
					Size:  8,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

func addQuoteCustomer(m core.Maroto, q Quotation) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{Size: 8, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("BILL TO", labelStyle)),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(orNA(q.CustomerName), props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
		),
	)
	for _, line := range []string{orNA(q.CompanyName), orNA(q.Address)} {
		m.AddRows(
			row.New(6).Add(col.New(12).Add(text.New(line, valueStyle))),
		)
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Phone: %s | Email: %s", orNA(q.Phone), orNA(q.Email)), valueStyle)),
		),
	)
	m.AddRows(row.New(3))
}

func addQuoteEquipmentTable(m core.Maroto, q Quotation) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(text.New("Equipment", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Rate / Day", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Days", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, r := range equipmentRows(q) {
		bodyLeft := props.Text{Size: 7, Align: align.Left}
		bodyRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		cols := []core.Col{
			col.New(5).Add(text.New(r.Name, bodyLeft)),
			col.New(2).Add(text.New(FormatINR(r.Rate), bodyRight)),
			col.New(1).Add(text.New(FormatQty(r.Days), bodyRight)),
			col.New(1).Add(text.New(FormatQty(r.Quantity), bodyRight)),
			col.New(3).Add(text.New(FormatINR(r.Amount), bodyRight)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}

	m.AddRows(row.New(2))
}

func addQuoteCostSummary(m core.Maroto, q Quotation, b CostBreakdown) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 8, Align: align.Right}

	costRows := []struct {
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
	for _, r := range costRows {
		if r.amount == 0 {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(r.label, labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatINR(r.amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(
		row.New(6).Add(
			col.New(9).Add(text.New("Subtotal", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatINR(b.Subtotal), labelStyle)).WithStyle(summaryCell),
		),
	)
	if q.IncludeGST {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New("GST", labelStyle)).WithStyle(summaryCell),
				col.New(3).Add(text.New(FormatINR(b.GSTAmount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatINR(b.TotalAmount), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(AmountToWords(b.TotalAmount), props.Text{
				Size:  8,
				Style: fontstyle.Italic,
				Align: align.Right,
			})),
		),
	)
	m.AddRows(row.New(2))
}

func addQuoteTerms(m core.Maroto) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New("TERMS & CONDITIONS", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
	for i, clause := range DefaultTerms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(fmt.Sprintf("%d. %s", i+1, clause), props.Text{
					Size:  7,
					Align: align.Left,
				})),
			),
		)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
