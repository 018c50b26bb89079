// Package templates holds the browser-facing page components. They are
// written directly against the templ runtime API because the quotation
// document body arrives as a ready HTML string from the rendering engine.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Layout wraps a body component in the application page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title></head><body style="margin:0;background:#f1f3f5;">`,
			templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// QuotePreview shows a rendered quotation document with a toolbar linking
// to the download formats.
func QuotePreview(quotationID, quoteNumber, documentHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<div style="padding:12px 24px;background:#212529;color:#fff;display:flex;justify-content:space-between;align-items:center;">`+
				`<span>Quotation %s</span>`+
				`<span><a style="color:#8fd3fe;margin-right:16px;" href="/quotations/%s/export/pdf">Download PDF</a>`+
				`<a style="color:#8fd3fe;" href="/quotations/%s/export/excel">Download Excel</a></span>`+
				`</div>`,
			templ.EscapeString(quoteNumber),
			templ.EscapeString(quotationID),
			templ.EscapeString(quotationID)); err != nil {
			return err
		}
		// The document is engine output, already escaped where it matters.
		return templ.Raw(documentHTML).Render(ctx, w)
	})
}

// QuoteListItem is one row of the quotations index page.
type QuoteListItem struct {
	ID           string
	Number       string
	CustomerName string
	Total        string
}

// QuoteList renders the quotations index.
func QuoteList(items []QuoteListItem) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div style="max-width:800px;margin:24px auto;background:#fff;padding:24px;">`+
				`<h1 style="font-family:sans-serif;">Quotations</h1>`+
				`<table style="width:100%;border-collapse:collapse;font-family:sans-serif;font-size:14px;">`+
				`<tr><th align="left">Quote #</th><th align="left">Customer</th><th align="right">Total</th></tr>`); err != nil {
			return err
		}
		if len(items) == 0 {
			if _, err := io.WriteString(w,
				`<tr><td colspan="3" style="padding:16px 0;color:#868e96;">No quotations yet.</td></tr>`); err != nil {
				return err
			}
		}
		for _, item := range items {
			if _, err := fmt.Fprintf(w,
				`<tr><td><a href="/quotations/%s/preview">%s</a></td><td>%s</td><td align="right">%s</td></tr>`,
				templ.EscapeString(item.ID),
				templ.EscapeString(item.Number),
				templ.EscapeString(item.CustomerName),
				templ.EscapeString(item.Total)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</table></div>`)
		return err
	})
}
