package services

import (
	"log"

	"github.com/pocketbase/pocketbase"
)

// RateTable holds every pricing amount the cost calculator consumes.
// It is passed explicitly into each calculation so one process can serve
// multiple pricing configurations and tests can run against arbitrary rates.
type RateTable struct {
	FoodRatePerDay   float64
	AccomRatePerDay  float64
	RunningCostPerKm float64 // fallback when the quotation carries no per-km cost

	// Fixed adjustment per risk level ("low", "medium", "high").
	RiskAmounts map[string]float64

	// Fraction of the working cost added when usage is "heavy".
	// "normal" and "medium" usage contribute nothing.
	HeavyUsageFactor float64

	// Fixed fee per incidental charge code.
	IncidentalAmounts map[string]float64

	// Fixed fee per other-factor flag (rigger, helper).
	OtherFactorAmounts map[string]float64

	GSTPercent float64
}

// DefaultRateTable returns the standard pricing policy. The same values are
// seeded into the rate_settings collection on first startup.
func DefaultRateTable() RateTable {
	return RateTable{
		FoodRatePerDay:   2500,
		AccomRatePerDay:  4000,
		RunningCostPerKm: 100,
		RiskAmounts: map[string]float64{
			"low":    0,
			"medium": 8000,
			"high":   15000,
		},
		HeavyUsageFactor: 0.5,
		IncidentalAmounts: map[string]float64{
			"incident1": 5000,
			"incident2": 10000,
			"incident3": 15000,
		},
		OtherFactorAmounts: map[string]float64{
			"rigger": 40000,
			"helper": 12000,
		},
		GSTPercent: 18,
	}
}

// LoadRateTable reads the active pricing configuration from the
// rate_settings collection. Any field the record does not carry keeps its
// default, so a partially edited record never zeroes out the policy.
func LoadRateTable(app *pocketbase.PocketBase) RateTable {
	rates := DefaultRateTable()

	records, err := app.FindRecordsByFilter("rate_settings", "", "-created", 1, 0)
	if err != nil || len(records) == 0 {
		if err != nil {
			log.Printf("rates: could not load rate_settings, using defaults: %v", err)
		}
		return rates
	}
	record := records[0]

	if v := record.GetFloat("food_rate_per_day"); v > 0 {
		rates.FoodRatePerDay = v
	}
	if v := record.GetFloat("accom_rate_per_day"); v > 0 {
		rates.AccomRatePerDay = v
	}
	if v := record.GetFloat("running_cost_per_km"); v > 0 {
		rates.RunningCostPerKm = v
	}
	if v := record.GetFloat("heavy_usage_factor"); v > 0 {
		rates.HeavyUsageFactor = v
	}
	if v := record.GetFloat("gst_percent"); v > 0 {
		rates.GSTPercent = v
	}

	var riskAmounts map[string]float64
	if err := record.UnmarshalJSONField("risk_amounts", &riskAmounts); err == nil && len(riskAmounts) > 0 {
		rates.RiskAmounts = riskAmounts
	}
	var incidentalAmounts map[string]float64
	if err := record.UnmarshalJSONField("incidental_amounts", &incidentalAmounts); err == nil && len(incidentalAmounts) > 0 {
		rates.IncidentalAmounts = incidentalAmounts
	}
	var otherFactorAmounts map[string]float64
	if err := record.UnmarshalJSONField("other_factor_amounts", &otherFactorAmounts); err == nil && len(otherFactorAmounts) > 0 {
		rates.OtherFactorAmounts = otherFactorAmounts
	}

	return rates
}
