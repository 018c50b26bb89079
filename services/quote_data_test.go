package services_test

import (
	"testing"
	"time"

	"cranequote/collections"
	"cranequote/services"
	"cranequote/testhelpers"
)

func TestBuildQuotationData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestQuotation(t, app, "Ravi Kumar")
	testhelpers.CreateTestMachine(t, app, record.Id, "Ace 14T Hydra", 9000, 2)
	testhelpers.CreateTestMachine(t, app, record.Id, "Escorts TRX 2319", 14000, 1)

	q, meta, err := services.BuildQuotationData(app, record.Id)
	if err != nil {
		t.Fatalf("BuildQuotationData returned error: %v", err)
	}

	if q.CustomerName != "Ravi Kumar" {
		t.Errorf("CustomerName = %q", q.CustomerName)
	}
	if q.NumberOfDays != 30 || q.WorkingCost != 150000 {
		t.Errorf("numeric fields not mapped: days=%v working=%v", q.NumberOfDays, q.WorkingCost)
	}
	if q.Usage != "heavy" || q.RiskFactor != "medium" {
		t.Errorf("categorical fields not mapped: usage=%q risk=%q", q.Usage, q.RiskFactor)
	}
	if !q.IncludeGST {
		t.Error("IncludeGST not mapped")
	}
	if len(q.Machines) != 2 {
		t.Fatalf("expected 2 machines, got %d", len(q.Machines))
	}
	if q.Machines[0].Name != "Ace 14T Hydra" || q.Machines[0].DailyRate != 9000 || q.Machines[0].Quantity != 2 {
		t.Errorf("first machine mapped wrong: %+v", q.Machines[0])
	}
	if meta.Number != "SCS-QT-25-26-001" {
		t.Errorf("meta.Number = %q", meta.Number)
	}
	if meta.Date == "" || meta.ValidUntil == "" {
		t.Errorf("meta dates not computed: %+v", meta)
	}
}

func TestBuildQuotationData_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, _, err := services.BuildQuotationData(app, "nonexistent"); err == nil {
		t.Fatal("expected error for missing quotation")
	}
}

func TestLoadTemplate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	blocks := []services.TemplateBlock{{Type: "header"}, {Type: "total"}}
	record := testhelpers.CreateTestTemplate(t, app, "Structured", blocks, "")

	tpl := services.LoadTemplate(app, record.Id)
	if tpl == nil {
		t.Fatal("expected template")
	}
	if len(tpl.Blocks) != 2 || tpl.Blocks[0].Type != "header" {
		t.Errorf("blocks not decoded: %+v", tpl.Blocks)
	}

	if services.LoadTemplate(app, "") != nil {
		t.Error("empty id should yield nil template")
	}
	if services.LoadTemplate(app, "missing") != nil {
		t.Error("unknown id should yield nil template")
	}
}

func TestLoadRateTable_Defaults(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// No rate_settings record yet: full defaults.
	rates := services.LoadRateTable(app)
	if rates.FoodRatePerDay != 2500 || rates.GSTPercent != 18 {
		t.Errorf("expected default rates, got %+v", rates)
	}
}

func TestLoadRateTable_Seeded(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	rates := services.LoadRateTable(app)
	want := services.DefaultRateTable()
	if rates.FoodRatePerDay != want.FoodRatePerDay ||
		rates.AccomRatePerDay != want.AccomRatePerDay ||
		rates.GSTPercent != want.GSTPercent {
		t.Errorf("seeded rates differ from defaults: %+v", rates)
	}
	if rates.RiskAmounts["medium"] != 8000 || rates.IncidentalAmounts["incident2"] != 10000 {
		t.Errorf("seeded amount tables not loaded: %+v", rates)
	}
}

func TestGenerateQuoteNumber_Sequence(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	first, err := services.GenerateQuoteNumber(app, now)
	if err != nil {
		t.Fatalf("GenerateQuoteNumber returned error: %v", err)
	}
	if first != "SCS-QT-26-27-001" {
		t.Errorf("first number = %q, want SCS-QT-26-27-001", first)
	}

	// Persist a quotation carrying the first number; the next must advance.
	record := testhelpers.CreateTestQuotation(t, app, "Seq Customer")
	record.Set("quote_number", first)
	if err := app.Save(record); err != nil {
		t.Fatalf("save: %v", err)
	}

	second, err := services.GenerateQuoteNumber(app, now)
	if err != nil {
		t.Fatalf("GenerateQuoteNumber returned error: %v", err)
	}
	if second != "SCS-QT-26-27-002" {
		t.Errorf("second number = %q, want SCS-QT-26-27-002", second)
	}
}
