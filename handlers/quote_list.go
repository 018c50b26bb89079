package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/services"
	"cranequote/templates"
)

// HandleQuotationList renders the quotations index with each quotation's
// computed total.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotations", "", "-created", 0, 0)
		if err != nil {
			log.Printf("quote_list: failed to query quotations: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quotations")
		}

		rates := services.LoadRateTable(app)

		items := make([]templates.QuoteListItem, 0, len(records))
		for _, record := range records {
			q, meta, err := services.BuildQuotationData(app, record.Id)
			if err != nil {
				log.Printf("quote_list: skipping %s: %v", record.Id, err)
				continue
			}
			breakdown := services.ComputeBreakdown(*q, rates)
			items = append(items, templates.QuoteListItem{
				ID:           record.Id,
				Number:       meta.Number,
				CustomerName: q.CustomerName,
				Total:        services.FormatINR(breakdown.TotalAmount),
			})
		}

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.Layout("Quotations", templates.QuoteList(items)).Render(e.Request.Context(), e.Response)
	}
}
