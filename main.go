package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/collections"
	"cranequote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed defaults on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quotation documents ──────────────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.GET("/quotations/{id}/preview", handlers.HandleQuotationPreview(app))
		se.Router.GET("/quotations/{id}/document", handlers.HandleQuotationDocument(app))
		se.Router.GET("/quotations/{id}/breakdown", handlers.HandleQuotationBreakdown(app))

		// ── Downloads ────────────────────────────────────────────
		se.Router.GET("/quotations/{id}/export/excel", handlers.HandleQuotationExportExcel(app))
		se.Router.GET("/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app))

		// Redirect home to the quotations list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotations")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
