// Package testhelpers provides utilities for testing the PocketBase-backed
// quotation application.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cranequote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation creates a quotation record with the given customer
// name, sensible numeric defaults and GST enabled, then returns it.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", "SCS-QT-25-26-001")
	record.Set("customer_name", customerName)
	record.Set("company_name", "Test Constructions Pvt. Ltd.")
	record.Set("address", "Survey 8, MIDC, Chakan")
	record.Set("phone", "+91 99999 11111")
	record.Set("email", "buyer@example.com")
	record.Set("number_of_days", 30)
	record.Set("working_hours", 8)
	record.Set("working_cost", 150000)
	record.Set("food_resources", 2)
	record.Set("accom_resources", 2)
	record.Set("site_distance", 50)
	record.Set("usage", "heavy")
	record.Set("risk_factor", "medium")
	record.Set("extra_charge", 5000)
	record.Set("include_gst", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestMachine adds a machine row to a quotation and returns it.
func CreateTestMachine(t *testing.T, app *pocketbase.PocketBase, quotationID, name string, dailyRate, quantity float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_machines")
	if err != nil {
		t.Fatalf("failed to find quotation_machines collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("name", name)
	record.Set("daily_rate", dailyRate)
	record.Set("quantity", quantity)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test machine: %v", err)
	}

	return record
}

// CreateTestTemplate creates a document template record. blocks may be nil
// and content empty; the combination decides the rendering strategy.
func CreateTestTemplate(t *testing.T, app *pocketbase.PocketBase, name string, blocks any, content string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("document_templates")
	if err != nil {
		t.Fatalf("failed to find document_templates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	if blocks != nil {
		record.Set("blocks", blocks)
	}
	if content != "" {
		record.Set("content", content)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test template: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q", frag)
		}
	}
}
