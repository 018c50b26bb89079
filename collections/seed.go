package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/services"
)

// Seed inserts the default pricing configuration and the standard document
// templates. It is safe to call on every startup: each section returns
// early when records already exist.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedRateSettings(app); err != nil {
		return err
	}
	return seedTemplates(app)
}

func seedRateSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("rate_settings")
	if err != nil {
		return fmt.Errorf("seed: could not find rate_settings collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query rate_settings: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: inserting default rate settings …")

	rates := services.DefaultRateTable()
	record := core.NewRecord(col)
	record.Set("food_rate_per_day", rates.FoodRatePerDay)
	record.Set("accom_rate_per_day", rates.AccomRatePerDay)
	record.Set("running_cost_per_km", rates.RunningCostPerKm)
	record.Set("heavy_usage_factor", rates.HeavyUsageFactor)
	record.Set("gst_percent", rates.GSTPercent)
	record.Set("risk_amounts", rates.RiskAmounts)
	record.Set("incidental_amounts", rates.IncidentalAmounts)
	record.Set("other_factor_amounts", rates.OtherFactorAmounts)

	if err := app.Save(record); err != nil {
		return fmt.Errorf("seed: could not save rate settings: %w", err)
	}
	return nil
}

type templateDef struct {
	name      string
	blocks    []services.TemplateBlock
	content   string
	isDefault bool
}

var defaultTemplates = []templateDef{
	{
		name:      "Standard Rental Quotation",
		isDefault: true,
		blocks: []services.TemplateBlock{
			{Type: "header"},
			{Type: "customer"},
			{Type: "text", Content: "<p>Dear {{customer.name}}, thank you for your enquiry. We are pleased to quote for {{equipment.name}} as follows.</p>"},
			{Type: "equipment_table"},
			{Type: "cost_summary"},
			{Type: "terms_conditions"},
		},
	},
	{
		name: "Short Letter Quotation",
		content: "Dear {{customer.name}},\n\n" +
			"We are pleased to offer {{equipment.name}} for {{equipment.days}} days " +
			"at a total of {{cost.total}} ({{cost.words}}).\n\n" +
			"This offer is valid until {{quote.validUntil}}.\n\n" +
			"Regards,\n{{company.name}}\n{{company.phone}}",
	},
}

func seedTemplates(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("document_templates")
	if err != nil {
		return fmt.Errorf("seed: could not find document_templates collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query document_templates: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: inserting standard document templates …")

	for _, def := range defaultTemplates {
		record := core.NewRecord(col)
		record.Set("name", def.name)
		record.Set("is_default", def.isDefault)
		if len(def.blocks) > 0 {
			record.Set("blocks", def.blocks)
		}
		if def.content != "" {
			record.Set("content", def.content)
		}
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save template %q: %w", def.name, err)
		}
	}
	return nil
}
