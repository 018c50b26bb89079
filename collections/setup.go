package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the quotations,
// quotation_machines, document_templates and rate_settings collections.
func Setup(app *pocketbase.PocketBase) {
	templates := ensureCollection(app, "document_templates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.JSONField{Name: "blocks"})
		c.Fields.Add(&core.TextField{Name: "content"})
		c.Fields.Add(&core.BoolField{Name: "is_default"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number"})
		c.Fields.Add(&core.DateField{Name: "quote_date"})

		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "company_name"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.EmailField{Name: "email"})

		c.Fields.Add(&core.TextField{Name: "selected_equipment"})
		c.Fields.Add(&core.NumberField{Name: "total_rent"})
		c.Fields.Add(&core.NumberField{Name: "number_of_days"})
		c.Fields.Add(&core.NumberField{Name: "working_hours"})
		c.Fields.Add(&core.NumberField{Name: "working_cost"})
		c.Fields.Add(&core.NumberField{Name: "food_resources"})
		c.Fields.Add(&core.NumberField{Name: "accom_resources"})
		c.Fields.Add(&core.NumberField{Name: "site_distance"})
		c.Fields.Add(&core.NumberField{Name: "running_cost_per_km"})
		c.Fields.Add(&core.NumberField{Name: "mob_demob_cost"})
		c.Fields.Add(&core.NumberField{Name: "extra_charge"})

		c.Fields.Add(&core.SelectField{
			Name:      "usage",
			Values:    []string{"normal", "medium", "heavy"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "risk_factor",
			Values:    []string{"low", "medium", "high"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "shift_type",
			Values:    []string{"single", "double"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "day_night",
			Values:    []string{"day", "night"},
			MaxSelect: 1,
		})

		c.Fields.Add(&core.JSONField{Name: "incidentals"})
		c.Fields.Add(&core.JSONField{Name: "other_factors"})
		c.Fields.Add(&core.BoolField{Name: "include_gst"})

		c.Fields.Add(&core.RelationField{
			Name:         "template",
			CollectionId: templates.Id,
			MaxSelect:    1,
		})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_machines", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "daily_rate", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "rate_settings", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "food_rate_per_day"})
		c.Fields.Add(&core.NumberField{Name: "accom_rate_per_day"})
		c.Fields.Add(&core.NumberField{Name: "running_cost_per_km"})
		c.Fields.Add(&core.NumberField{Name: "heavy_usage_factor"})
		c.Fields.Add(&core.NumberField{Name: "gst_percent"})
		c.Fields.Add(&core.JSONField{Name: "risk_amounts"})
		c.Fields.Add(&core.JSONField{Name: "incidental_amounts"})
		c.Fields.Add(&core.JSONField{Name: "other_factor_amounts"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it
// does, the existing collection is returned. Otherwise a new base
// collection is created, the addFields callback populates its fields, and
// the collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
