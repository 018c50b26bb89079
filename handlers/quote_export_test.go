package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cranequote/testhelpers"
)

func TestHandleQuotationExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestQuotation(t, app, "Excel Customer")
	testhelpers.CreateTestMachine(t, app, record.Id, "Ace 14T Hydra", 9000, 1)

	handler := HandleQuotationExportExcel(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/"+record.Id+"/export/excel", nil)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	ct := rec.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("content-type = %q", ct)
	}
	disp := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disp, ".xlsx") {
		t.Errorf("Content-Disposition = %q", disp)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty workbook body")
	}
}

func TestHandleQuotationExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	record := testhelpers.CreateTestQuotation(t, app, "PDF Customer")
	testhelpers.CreateTestMachine(t, app, record.Id, "Escorts TRX 2319", 14000, 1)

	handler := HandleQuotationExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/"+record.Id+"/export/pdf", nil)
	req.SetPathValue("id", record.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content-type = %q", ct)
	}
	if rec.Header().Get("Content-Disposition") == "" {
		t.Error("expected Content-Disposition header")
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty PDF body")
	}
}

func TestHandleQuotationExportPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleQuotationExportPDF(app)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"SCS-QT-25-26-001", "SCS-QT-25-26-001"},
		{"a/b\\c:d", "a-b-c-d"},
		{"with space", "with_space"},
		{`quote"<>|?*`, "quote------"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.input); got != tt.expect {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
