package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/services"
	"cranequote/templates"
)

// HandleQuotationPreview returns a handler that renders a quotation document
// inside the application page shell, with download links.
func HandleQuotationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quote_preview: quotation %s not found: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		q, meta, err := services.BuildQuotationData(app, id)
		if err != nil {
			log.Printf("quote_preview: failed to build data for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		tpl := services.LoadTemplate(app, record.GetString("template"))
		rates := services.LoadRateTable(app)
		doc := services.RenderDocument(q, tpl, rates, meta)

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := templates.Layout("Quotation "+meta.Number, templates.QuotePreview(id, meta.Number, doc))
		return page.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotationDocument returns the bare rendered HTML document, suitable
// for an iframe preview pane or a downstream HTML-to-PDF converter.
func HandleQuotationDocument(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		record, err := app.FindRecordById("quotations", id)
		if err != nil {
			log.Printf("quote_document: quotation %s not found: %v", id, err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		q, meta, err := services.BuildQuotationData(app, id)
		if err != nil {
			log.Printf("quote_document: failed to build data for %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to load quotation")
		}

		tpl := services.LoadTemplate(app, record.GetString("template"))
		rates := services.LoadRateTable(app)

		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return e.String(http.StatusOK, services.RenderDocument(q, tpl, rates, meta))
	}
}
