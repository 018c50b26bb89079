package services

import (
	"fmt"
	"html"
	"strings"
)

// Template is a document template record. Exactly one of three renderings
// applies: a non-empty Blocks list, a non-empty placeholder Content string,
// or neither — which falls back to the built-in default document.
type Template struct {
	ID      string
	Name    string
	Blocks  []TemplateBlock
	Content string
}

// templateStrategy is the closed set of rendering strategies. selectStrategy
// picks exactly one per render; RenderDocument switches over it exhaustively.
type templateStrategy int

const (
	strategyDefault templateStrategy = iota
	strategyBlocks
	strategyPlaceholder
)

// selectStrategy decides how a template renders, from its fields alone.
// First match wins: blocks, then placeholder content, then the default.
func selectStrategy(tpl *Template) templateStrategy {
	switch {
	case tpl == nil:
		return strategyDefault
	case len(tpl.Blocks) > 0:
		return strategyBlocks
	case strings.TrimSpace(tpl.Content) != "":
		return strategyPlaceholder
	default:
		return strategyDefault
	}
}

// defaultBlocks is the built-in document: the fixed block order used when
// no template is configured.
var defaultBlocks = []TemplateBlock{
	{Type: "header"},
	{Type: "customer"},
	{Type: "table"},
	{Type: "total"},
	{Type: "terms"},
}

// RenderDocument renders a quotation into a self-contained HTML document.
// It is a total function: a nil quotation yields an error document rather
// than a panic, so a preview pane embedding the result never breaks.
func RenderDocument(q *Quotation, tpl *Template, rates RateTable, meta QuoteMeta) string {
	if q == nil {
		return AssembleDocument([]string{errorFragment("No quotation data available for rendering.")})
	}

	breakdown := ComputeBreakdown(*q, rates)
	ctx := BuildVariableContext(*q, meta, breakdown)

	var fragments []string
	switch selectStrategy(tpl) {
	case strategyBlocks:
		hasCostSummary := false
		for _, block := range tpl.Blocks {
			if KindOf(block.Type) == BlockTotal {
				hasCostSummary = true
			}
			fragments = append(fragments, RenderBlock(block, *q, breakdown, meta, ctx))
		}
		// Every document shows cost totals exactly once.
		if !hasCostSummary {
			fragments = append(fragments, renderCostSummary(*q, breakdown))
		}
	case strategyPlaceholder:
		fragments = append(fragments, `<div class="text-block">`+Substitute(tpl.Content, ctx)+`</div>`)
	case strategyDefault:
		for _, block := range defaultBlocks {
			fragments = append(fragments, RenderBlock(block, *q, breakdown, meta, ctx))
		}
	}

	return AssembleDocument(fragments)
}

// AssembleDocument wraps the body fragments with the shared style sheet and
// the document container. Pure string concatenation.
func AssembleDocument(fragments []string) string {
	var sb strings.Builder
	sb.WriteString(documentStyles)
	sb.WriteString(`<div class="quotation-document">`)
	for _, fragment := range fragments {
		sb.WriteString(fragment)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// ErrorMarker appears in every error fragment so callers that need to
// detect a failed render can check for it without parsing HTML. It is the
// full class attribute so the stylesheet's .render-error rule never
// produces a false positive.
const ErrorMarker = `class="render-error"`

func errorFragment(message string) string {
	return fmt.Sprintf(`<div %s><h3>Unable to render quotation</h3><p>%s</p></div>`,
		ErrorMarker, html.EscapeString(message))
}

const documentStyles = `<style>
.quotation-document { font-family: "Helvetica Neue", Arial, sans-serif; color: #212529; max-width: 800px; margin: 0 auto; padding: 24px; background: #fff; }
.quotation-document h1 { font-size: 22px; margin: 0 0 2px; }
.quotation-document h2 { font-size: 18px; margin: 0 0 6px; color: #495057; }
.quotation-document h3 { font-size: 14px; margin: 18px 0 6px; text-transform: uppercase; letter-spacing: 0.05em; color: #495057; }
.quotation-document p { margin: 2px 0; font-size: 13px; }
.doc-header { display: flex; justify-content: space-between; border-bottom: 2px solid #212529; padding-bottom: 12px; }
.doc-header .tagline { color: #868e96; font-style: italic; }
.quote-meta { text-align: right; }
.customer-block .customer-name { font-weight: bold; }
.equipment-table, .cost-table { width: 100%; border-collapse: collapse; margin: 10px 0; font-size: 13px; }
.equipment-table th { background: #212529; color: #fff; padding: 6px 8px; text-align: left; }
.equipment-table td, .cost-table td { border: 1px solid #dee2e6; padding: 6px 8px; }
.equipment-table td.num, .cost-table td.num, .equipment-table th:nth-child(n+2) { text-align: right; }
.cost-table .subtotal-row td { font-weight: bold; border-top: 2px solid #212529; }
.cost-table .total-row td { font-weight: bold; background: #212529; color: #fff; }
.amount-words { font-style: italic; color: #495057; }
.terms-block ol { padding-left: 18px; font-size: 12px; }
.terms-block li { margin: 3px 0; }
.text-block { margin: 10px 0; font-size: 13px; }
.render-error { border: 1px solid #dc3545; background: #fdf2f2; color: #842029; padding: 16px; border-radius: 4px; }
</style>`
