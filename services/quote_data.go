package services

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
)

// BuildQuotationData loads a quotation record with its machines and shapes
// it into the engine's Quotation input plus the document metadata.
func BuildQuotationData(app *pocketbase.PocketBase, quotationID string) (*Quotation, QuoteMeta, error) {
	record, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return nil, QuoteMeta{}, fmt.Errorf("quotation not found: %w", err)
	}

	q := &Quotation{
		ID:                record.Id,
		CustomerName:      record.GetString("customer_name"),
		CompanyName:       record.GetString("company_name"),
		Address:           record.GetString("address"),
		Phone:             record.GetString("phone"),
		Email:             record.GetString("email"),
		SelectedEquipment: record.GetString("selected_equipment"),
		TotalRent:         record.GetFloat("total_rent"),
		NumberOfDays:      record.GetFloat("number_of_days"),
		WorkingHours:      record.GetFloat("working_hours"),
		WorkingCost:       record.GetFloat("working_cost"),
		FoodResources:     record.GetFloat("food_resources"),
		AccomResources:    record.GetFloat("accom_resources"),
		SiteDistance:      record.GetFloat("site_distance"),
		RunningCostPerKm:  record.GetFloat("running_cost_per_km"),
		MobDemobCost:      record.GetFloat("mob_demob_cost"),
		ExtraCharge:       record.GetFloat("extra_charge"),
		Usage:             record.GetString("usage"),
		RiskFactor:        record.GetString("risk_factor"),
		ShiftType:         record.GetString("shift_type"),
		DayNight:          record.GetString("day_night"),
		IncludeGST:        record.GetBool("include_gst"),
	}

	if err := record.UnmarshalJSONField("incidentals", &q.Incidentals); err != nil && record.GetString("incidentals") != "" {
		log.Printf("quote_data: bad incidentals list on %s: %v", record.Id, err)
	}
	if err := record.UnmarshalJSONField("other_factors", &q.OtherFactors); err != nil && record.GetString("other_factors") != "" {
		log.Printf("quote_data: bad other_factors list on %s: %v", record.Id, err)
	}

	machines, err := app.FindRecordsByFilter(
		"quotation_machines",
		"quotation = {:id}",
		"created",
		0,
		0,
		map[string]any{"id": record.Id},
	)
	if err != nil {
		return nil, QuoteMeta{}, fmt.Errorf("load machines for %s: %w", record.Id, err)
	}
	for _, m := range machines {
		q.Machines = append(q.Machines, Machine{
			Name:      m.GetString("name"),
			DailyRate: m.GetFloat("daily_rate"),
			Quantity:  m.GetFloat("quantity"),
		})
	}

	number := record.GetString("quote_number")
	if number == "" {
		number = record.Id
	}
	issuedAt := record.GetDateTime("quote_date").Time()
	if issuedAt.IsZero() {
		issuedAt = record.GetDateTime("created").Time()
	}
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	return q, NewQuoteMeta(number, issuedAt), nil
}

// LoadTemplate fetches the document template linked to a quotation. A
// missing or empty reference returns nil, which renders the built-in
// default document.
func LoadTemplate(app *pocketbase.PocketBase, templateID string) *Template {
	if templateID == "" {
		return nil
	}
	record, err := app.FindRecordById("document_templates", templateID)
	if err != nil {
		log.Printf("quote_data: template %s not found, using default: %v", templateID, err)
		return nil
	}

	tpl := &Template{
		ID:      record.Id,
		Name:    record.GetString("name"),
		Content: record.GetString("content"),
	}
	if err := record.UnmarshalJSONField("blocks", &tpl.Blocks); err != nil && record.GetString("blocks") != "" {
		log.Printf("quote_data: bad blocks list on template %s: %v", record.Id, err)
	}
	return tpl
}
