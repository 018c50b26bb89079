package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/services"
)

// HandleQuotationExportExcel returns a handler that generates and downloads
// the cost breakdown workbook for a quotation.
func HandleQuotationExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		q, meta, err := services.BuildQuotationData(app, id)
		if err != nil {
			log.Printf("quote_export: quotation %s not found: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		rates := services.LoadRateTable(app)
		breakdown := services.ComputeBreakdown(*q, rates)

		xlsxBytes, err := services.GenerateBreakdownExcel(*q, breakdown, meta)
		if err != nil {
			log.Printf("quote_export: failed to generate excel for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel")
		}

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(meta.Number))
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuotationExportPDF returns a handler that generates and downloads a
// PDF for a quotation.
func HandleQuotationExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		q, meta, err := services.BuildQuotationData(app, id)
		if err != nil {
			log.Printf("quote_export: quotation %s not found: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		rates := services.LoadRateTable(app)
		breakdown := services.ComputeBreakdown(*q, rates)

		pdfBytes, err := services.GenerateQuotePDF(*q, breakdown, meta)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(meta.Number))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-", "?", "-",
		"\"", "-", "<", "-", ">", "-", "|", "-", " ", "_",
	)
	return replacer.Replace(s)
}
