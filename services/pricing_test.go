package services

import (
	"math"
	"testing"
)

func TestComputeBreakdown_FullExample(t *testing.T) {
	q := Quotation{
		NumberOfDays:   30,
		WorkingCost:    150000,
		FoodResources:  2,
		AccomResources: 2,
		SiteDistance:   50,
		RiskFactor:     "medium",
		Usage:          "heavy",
		ExtraCharge:    5000,
		IncludeGST:     true,
	}
	b := ComputeBreakdown(q, DefaultRateTable())

	if b.WorkingCost != 150000 {
		t.Errorf("WorkingCost = %v, want 150000", b.WorkingCost)
	}
	if b.FoodAccomCost != 390000 {
		t.Errorf("FoodAccomCost = %v, want 390000", b.FoodAccomCost)
	}
	if b.TransportCost != 5000 {
		t.Errorf("TransportCost = %v, want 5000", b.TransportCost)
	}
	if b.RiskAdjustment != 8000 {
		t.Errorf("RiskAdjustment = %v, want 8000", b.RiskAdjustment)
	}
	if b.UsageLoadFactor != 75000 {
		t.Errorf("UsageLoadFactor = %v, want 75000", b.UsageLoadFactor)
	}
	if b.ExtraCharges != 5000 {
		t.Errorf("ExtraCharges = %v, want 5000", b.ExtraCharges)
	}
	wantSubtotal := 150000.0 + 390000 + 5000 + 8000 + 75000 + 5000
	if b.Subtotal != wantSubtotal {
		t.Errorf("Subtotal = %v, want %v", b.Subtotal, wantSubtotal)
	}
	wantGST := math.Round(wantSubtotal * 0.18)
	if b.GSTAmount != wantGST {
		t.Errorf("GSTAmount = %v, want %v", b.GSTAmount, wantGST)
	}
	if b.TotalAmount != wantSubtotal+wantGST {
		t.Errorf("TotalAmount = %v, want %v", b.TotalAmount, wantSubtotal+wantGST)
	}
}

func TestComputeBreakdown_ZeroQuotation(t *testing.T) {
	b := ComputeBreakdown(Quotation{}, DefaultRateTable())
	if b.Subtotal != 0 || b.GSTAmount != 0 || b.TotalAmount != 0 {
		t.Errorf("empty quotation should cost nothing, got %+v", b)
	}
}

func TestComputeBreakdown_GSTDisabled(t *testing.T) {
	quotations := []Quotation{
		{WorkingCost: 100000},
		{WorkingCost: 100000, RiskFactor: "high", Usage: "heavy"},
		{TotalRent: 77777, NumberOfDays: 12, FoodResources: 3},
		{},
	}
	for _, q := range quotations {
		b := ComputeBreakdown(q, DefaultRateTable())
		if b.GSTAmount != 0 {
			t.Errorf("GSTAmount = %v with GST disabled, want 0", b.GSTAmount)
		}
		if b.TotalAmount != b.Subtotal {
			t.Errorf("TotalAmount = %v, want subtotal %v", b.TotalAmount, b.Subtotal)
		}
	}
}

func TestComputeBreakdown_SubtotalIsSumOfTerms(t *testing.T) {
	q := Quotation{
		WorkingCost:    240000,
		NumberOfDays:   20,
		FoodResources:  1,
		AccomResources: 2,
		SiteDistance:   80,
		MobDemobCost:   25000,
		RiskFactor:     "high",
		Usage:          "heavy",
		ExtraCharge:    1234,
		Incidentals:    []string{"incident1", "incident3"},
		OtherFactors:   []string{"rigger", "helper"},
		IncludeGST:     true,
	}
	b := ComputeBreakdown(q, DefaultRateTable())

	sum := b.WorkingCost + b.FoodAccomCost + b.TransportCost + b.MobDemobCost +
		b.RiskAdjustment + b.UsageLoadFactor + b.ExtraCharges +
		b.IncidentalCost + b.OtherFactorsCost
	if b.Subtotal != sum {
		t.Errorf("Subtotal = %v, want sum of terms %v", b.Subtotal, sum)
	}
	if b.TotalAmount != b.Subtotal+b.GSTAmount {
		t.Errorf("TotalAmount = %v, want %v", b.TotalAmount, b.Subtotal+b.GSTAmount)
	}
}

func TestComputeBreakdown_WorkingCostFallsBackToTotalRent(t *testing.T) {
	b := ComputeBreakdown(Quotation{TotalRent: 96000}, DefaultRateTable())
	if b.WorkingCost != 96000 {
		t.Errorf("WorkingCost = %v, want total rent 96000", b.WorkingCost)
	}
}

func TestComputeBreakdown_RiskLevels(t *testing.T) {
	tests := []struct {
		name   string
		risk   string
		expect float64
	}{
		{"low", "low", 0},
		{"medium", "medium", 8000},
		{"high", "high", 15000},
		{"uppercase", "HIGH", 15000},
		{"padded", " medium ", 8000},
		{"unknown", "extreme", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(Quotation{RiskFactor: tt.risk}, DefaultRateTable())
			if b.RiskAdjustment != tt.expect {
				t.Errorf("RiskAdjustment(%q) = %v, want %v", tt.risk, b.RiskAdjustment, tt.expect)
			}
		})
	}
}

func TestComputeBreakdown_UsageLevels(t *testing.T) {
	tests := []struct {
		name   string
		usage  string
		expect float64
	}{
		{"heavy", "heavy", 50000},
		{"normal contributes nothing", "normal", 0},
		{"medium contributes nothing", "medium", 0},
		{"unknown", "light", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBreakdown(Quotation{WorkingCost: 100000, Usage: tt.usage}, DefaultRateTable())
			if b.UsageLoadFactor != tt.expect {
				t.Errorf("UsageLoadFactor(%q) = %v, want %v", tt.usage, b.UsageLoadFactor, tt.expect)
			}
		})
	}
}

func TestComputeBreakdown_IncidentalsAndOtherFactors(t *testing.T) {
	q := Quotation{
		Incidentals:  []string{"incident1", "incident2", "no_such_code"},
		OtherFactors: []string{"rigger", "helper", "mystery"},
	}
	b := ComputeBreakdown(q, DefaultRateTable())
	if b.IncidentalCost != 15000 {
		t.Errorf("IncidentalCost = %v, want 15000", b.IncidentalCost)
	}
	if b.OtherFactorsCost != 52000 {
		t.Errorf("OtherFactorsCost = %v, want 52000", b.OtherFactorsCost)
	}
}

func TestComputeBreakdown_TransportRunningCost(t *testing.T) {
	rates := DefaultRateTable()

	// Quotation-level per-km cost wins.
	b := ComputeBreakdown(Quotation{SiteDistance: 40, RunningCostPerKm: 150}, rates)
	if b.TransportCost != 6000 {
		t.Errorf("TransportCost = %v, want 6000", b.TransportCost)
	}

	// Missing per-km cost falls back to the rate table.
	b = ComputeBreakdown(Quotation{SiteDistance: 40}, rates)
	if b.TransportCost != 4000 {
		t.Errorf("TransportCost = %v, want 4000", b.TransportCost)
	}
}

func TestComputeBreakdown_CustomRateTable(t *testing.T) {
	rates := RateTable{
		FoodRatePerDay:     100,
		AccomRatePerDay:    200,
		RunningCostPerKm:   10,
		RiskAmounts:        map[string]float64{"medium": 500},
		HeavyUsageFactor:   0.25,
		IncidentalAmounts:  map[string]float64{"incident1": 50},
		OtherFactorAmounts: map[string]float64{"rigger": 75},
		GSTPercent:         5,
	}
	q := Quotation{
		WorkingCost:    1000,
		NumberOfDays:   2,
		FoodResources:  1,
		AccomResources: 1,
		SiteDistance:   10,
		RiskFactor:     "medium",
		Usage:          "heavy",
		Incidentals:    []string{"incident1"},
		OtherFactors:   []string{"rigger"},
		IncludeGST:     true,
	}
	b := ComputeBreakdown(q, rates)

	if b.FoodAccomCost != 600 {
		t.Errorf("FoodAccomCost = %v, want 600", b.FoodAccomCost)
	}
	if b.TransportCost != 100 {
		t.Errorf("TransportCost = %v, want 100", b.TransportCost)
	}
	if b.RiskAdjustment != 500 {
		t.Errorf("RiskAdjustment = %v, want 500", b.RiskAdjustment)
	}
	if b.UsageLoadFactor != 250 {
		t.Errorf("UsageLoadFactor = %v, want 250", b.UsageLoadFactor)
	}
	if b.IncidentalCost != 50 || b.OtherFactorsCost != 75 {
		t.Errorf("fixed fees = %v/%v, want 50/75", b.IncidentalCost, b.OtherFactorsCost)
	}
	wantSubtotal := 1000.0 + 600 + 100 + 500 + 250 + 50 + 75
	if b.Subtotal != wantSubtotal {
		t.Errorf("Subtotal = %v, want %v", b.Subtotal, wantSubtotal)
	}
	if b.GSTAmount != math.Round(wantSubtotal*0.05) {
		t.Errorf("GSTAmount = %v, want %v", b.GSTAmount, math.Round(wantSubtotal*0.05))
	}
}
