// Package services provides the quotation pricing and document rendering
// engine for the crane rental CRM.
package services

import (
	"math"
	"strings"
)

// Machine is one selected crane on a quotation.
type Machine struct {
	Name      string
	DailyRate float64
	Quantity  float64
}

// Quotation is the priced rental proposal handed to the engine. It is built
// by the persistence layer (see quote_data.go) and never mutated here.
type Quotation struct {
	ID string

	// Customer contact
	CustomerName string
	CompanyName  string
	Address      string
	Phone        string
	Email        string

	// Selected equipment: either explicit machines or the legacy
	// single-equipment fields.
	Machines          []Machine
	SelectedEquipment string
	TotalRent         float64

	// Numeric parameters
	NumberOfDays     float64
	WorkingHours     float64
	WorkingCost      float64
	FoodResources    float64
	AccomResources   float64
	SiteDistance     float64
	RunningCostPerKm float64
	MobDemobCost     float64
	ExtraCharge      float64

	// Categorical parameters
	Usage      string // normal | medium | heavy
	RiskFactor string // low | medium | high
	ShiftType  string
	DayNight   string

	Incidentals  []string
	OtherFactors []string

	IncludeGST bool
}

// CostBreakdown is the itemized result of ComputeBreakdown. Subtotal is
// always the exact sum of the nine cost fields above it, in declaration
// order, and TotalAmount = Subtotal + GSTAmount.
type CostBreakdown struct {
	WorkingCost      float64 `json:"workingCost"`
	FoodAccomCost    float64 `json:"foodAccomCost"`
	TransportCost    float64 `json:"transportCost"`
	MobDemobCost     float64 `json:"mobDemobCost"`
	RiskAdjustment   float64 `json:"riskAdjustment"`
	UsageLoadFactor  float64 `json:"usageLoadFactor"`
	ExtraCharges     float64 `json:"extraCharges"`
	IncidentalCost   float64 `json:"incidentalCost"`
	OtherFactorsCost float64 `json:"otherFactorsCost"`
	Subtotal         float64 `json:"subtotal"`
	GSTAmount        float64 `json:"gstAmount"`
	TotalAmount      float64 `json:"totalAmount"`
}

// ComputeBreakdown calculates the full cost breakdown for a quotation
// against the given rate table. It never fails: every missing input
// contributes zero to its term.
func ComputeBreakdown(q Quotation, rates RateTable) CostBreakdown {
	var b CostBreakdown

	b.WorkingCost = q.WorkingCost
	if b.WorkingCost == 0 {
		b.WorkingCost = q.TotalRent
	}

	b.FoodAccomCost = (q.FoodResources*rates.FoodRatePerDay + q.AccomResources*rates.AccomRatePerDay) * q.NumberOfDays

	runningCost := q.RunningCostPerKm
	if runningCost == 0 {
		runningCost = rates.RunningCostPerKm
	}
	b.TransportCost = q.SiteDistance * runningCost

	b.MobDemobCost = q.MobDemobCost

	b.RiskAdjustment = rates.RiskAmounts[strings.ToLower(strings.TrimSpace(q.RiskFactor))]

	if strings.EqualFold(strings.TrimSpace(q.Usage), "heavy") {
		b.UsageLoadFactor = math.Round(b.WorkingCost * rates.HeavyUsageFactor)
	}

	b.ExtraCharges = q.ExtraCharge

	for _, code := range q.Incidentals {
		b.IncidentalCost += rates.IncidentalAmounts[code]
	}

	for _, flag := range q.OtherFactors {
		b.OtherFactorsCost += rates.OtherFactorAmounts[flag]
	}

	b.Subtotal = b.WorkingCost + b.FoodAccomCost + b.TransportCost +
		b.MobDemobCost + b.RiskAdjustment + b.UsageLoadFactor +
		b.ExtraCharges + b.IncidentalCost + b.OtherFactorsCost

	if q.IncludeGST {
		b.GSTAmount = math.Round(b.Subtotal * rates.GSTPercent / 100)
	}
	b.TotalAmount = b.Subtotal + b.GSTAmount

	return b
}
