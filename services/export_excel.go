package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateBreakdownExcel creates a one-sheet Excel workbook with the
// quotation's equipment rows and its ordered cost breakdown. It returns the
// file contents as a byte slice.
func GenerateBreakdownExcel(q Quotation, b CostBreakdown, meta QuoteMeta) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quotation"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := map[string]float64{"A": 36, "B": 14, "C": 10, "D": 10, "E": 18}
	for col, w := range widths {
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create bold style: %w", err)
	}

	// ── Header ──────────────────────────────────────────────────────────
	if err := f.MergeCell(sheetName, "A1", "E1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Quotation %s", CompanyName, meta.Number))
	f.SetCellStyle(sheetName, "A1", "E1", titleStyle)
	f.SetCellValue(sheetName, "A2", "Customer: "+sanitizeExcelCell(q.CustomerName))
	f.SetCellValue(sheetName, "A3", "Date: "+meta.Date+"  |  Valid Until: "+meta.ValidUntil)

	// ── Equipment table ─────────────────────────────────────────────────
	rowNum := 5
	headers := []string{"Equipment", "Rate / Day", "Days", "Qty", "Amount"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("E%d", rowNum), headerStyle)

	for _, r := range equipmentRows(q) {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), sanitizeExcelCell(r.Name))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.Rate)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.Days)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), r.Quantity)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), r.Amount)
	}

	// ── Cost breakdown ──────────────────────────────────────────────────
	rowNum += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), "Cost Breakdown")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("A%d", rowNum), boldStyle)

	costRows := []struct {
		label  string
		amount float64
		bold   bool
	}{
		{"Working Cost", b.WorkingCost, false},
		{"Food & Accommodation", b.FoodAccomCost, false},
		{"Transport", b.TransportCost, false},
		{"Mobilization / Demobilization", b.MobDemobCost, false},
		{"Risk Adjustment", b.RiskAdjustment, false},
		{"Usage Load", b.UsageLoadFactor, false},
		{"Extra Charges", b.ExtraCharges, false},
		{"Incidental Charges", b.IncidentalCost, false},
		{"Other Factors", b.OtherFactorsCost, false},
		{"Subtotal", b.Subtotal, true},
		{"GST", b.GSTAmount, false},
		{"Total", b.TotalAmount, true},
	}
	for _, r := range costRows {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.amount)
		if r.bold {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("B%d", rowNum), boldStyle)
		}
	}

	rowNum += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), AmountToWords(b.TotalAmount))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write excel buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes values that spreadsheet apps would otherwise
// interpret as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
