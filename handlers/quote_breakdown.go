package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/services"
)

// HandleQuotationBreakdown returns the computed cost breakdown as JSON, for
// summary widgets that need the numbers without the document.
func HandleQuotationBreakdown(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		q, _, err := services.BuildQuotationData(app, id)
		if err != nil {
			log.Printf("quote_breakdown: quotation %s not found: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		rates := services.LoadRateTable(app)
		return e.JSON(http.StatusOK, services.ComputeBreakdown(*q, rates))
	}
}
