package printing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/packhouse/backend/internal/domain/layout"
	"github.com/packhouse/backend/internal/domain/picklist"
)

// HTMLBuilder turns a paginated document model into the markup the PDF
// renderer prints. Every page is a fixed-size div matching the printable
// content box, so Chrome's own pagination never reflows anything.
type HTMLBuilder struct {
	tmpl *template.Template
}

// NewHTMLBuilder parses the document templates.
func NewHTMLBuilder() (*HTMLBuilder, error) {
	tmpl, err := template.New("document").Funcs(template.FuncMap{
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"pickEntry": func(entries []picklist.Entry, i int) *picklist.Entry {
			if i < 0 || i >= len(entries) {
				return nil
			}
			return &entries[i]
		},
	}).Parse(documentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse document template: %w", err)
	}
	return &HTMLBuilder{tmpl: tmpl}, nil
}

// BuildHTML renders the document into a complete HTML page.
func (b *HTMLBuilder) BuildHTML(doc *layout.Document) (string, error) {
	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("execute document template: %w", err)
	}
	return buf.String(), nil
}

// documentTemplate lays pages out at exactly 540x720pt, the letter
// content box left inside half-inch margins. Two-up halves split that
// box around a 12pt cut guide with trim padding on both sides.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: Helvetica, Arial, sans-serif; font-size: 9pt; color: #111; }
  .page {
    width: 540pt;
    height: 720pt;
    overflow: hidden;
    position: relative;
    page-break-after: always;
  }
  .page:last-child { page-break-after: auto; }

  .slip-header { height: 174pt; overflow: hidden; }
  .slip-half .slip-header { height: auto; max-height: 120pt; }
  .header-zones { display: table; width: 100%; table-layout: fixed; }
  .header-zone { display: table-cell; vertical-align: top; padding: 4pt; }
  .zone-shipto { width: 40%; white-space: pre-line; font-size: 10pt; }
  .zone-art { width: 25%; text-align: center; }
  .zone-meta { width: 35%; }
  .meta-line { border: 0.5pt solid #000; padding: 1pt 3pt; margin-bottom: 2pt; }
  .meta-label { font-weight: bold; margin-right: 3pt; }
  .pers-flag {
    display: inline-block; border: 1.5pt solid #000; padding: 1pt 4pt;
    font-weight: bold; font-size: 10pt; margin-top: 3pt;
  }
  .zone-badge { font-size: 8pt; color: #444; margin-top: 3pt; }
  .art-img { max-width: 60pt; max-height: 60pt; }

  table.items { width: 100%; border-collapse: collapse; }
  table.items th {
    border-bottom: 1.5pt solid #000; text-align: left;
    font-size: 8pt; text-transform: uppercase; padding: 2pt;
  }
  table.items td {
    border-bottom: 0.5pt solid #999; padding: 2pt; vertical-align: middle;
    height: 72pt;
  }
  .slip-half table.items td { height: auto; min-height: 30pt; }
  td.col-img { width: 64pt; }
  td.col-img img { max-width: 60pt; max-height: 60pt; }
  td.col-barcode img { max-height: 28pt; max-width: 90pt; }
  .item-sku { font-weight: bold; }
  .item-desc { font-size: 8pt; color: #444; }
  .barcode-text { font-family: monospace; font-size: 8pt; }
  td.col-qty { text-align: center; font-size: 12pt; font-weight: bold; width: 30pt; }

  .slip-footer {
    position: absolute; left: 0; right: 0; bottom: 0; height: 60pt;
    padding: 4pt;
  }
  .slip-half .slip-footer { position: static; height: auto; }
  .footer-tracking img { max-height: 36pt; }
  .footer-page { position: absolute; right: 4pt; bottom: 4pt; font-size: 8pt; color: #444; }

  .slip-half {
    height: 342pt;
    overflow: hidden;
    position: relative;
    padding: 18pt 0;
  }
  .cut-guide {
    height: 12pt;
    border-top: 1pt solid #000;
    background: repeating-linear-gradient(to right, #000 0 6pt, transparent 6pt 12pt);
    background-size: 12pt 1pt;
    background-position: bottom;
    background-repeat: repeat-x;
  }

  .pick-header { height: 40pt; }
  .pick-header h1 { font-size: 13pt; margin-bottom: 3pt; }
  .pick-cols { display: table; width: 100%; table-layout: fixed; font-weight: bold; font-size: 8pt; }
  .pick-cols span { display: table-cell; border-bottom: 1.5pt solid #000; padding: 1pt; }
  .pick-block { padding-bottom: 8pt; }
  .pick-row { display: table; width: 100%; table-layout: fixed; height: 26pt; }
  .pick-cell { display: table-cell; vertical-align: middle; padding: 1pt; font-size: 9pt; border-bottom: 0.5pt dotted #bbb; }
  .pick-loc { width: 6%; font-weight: bold; }
  .pick-sku { width: 13%; }
  .pick-qty { width: 4%; text-align: center; font-weight: bold; }
  .pick-break { width: 27%; font-size: 7pt; color: #555; }
</style>
{{if .Kind}}<title>{{.Kind}}</title>{{end}}
</head>
<body>
{{range .Pages}}
<div class="page">
  {{if .Picklist}}
    {{template "picklistPage" .Picklist}}
  {{else}}
    {{$page := .}}
    {{range $i, $region := .Slips}}
      {{if $region.Half}}
        <div class="slip-half">{{template "slipRegion" $region}}</div>
        {{if and (eq $i 0) $page.CutGuide}}<div class="cut-guide"></div>{{end}}
      {{else}}
        {{template "slipRegion" $region}}
      {{end}}
    {{end}}
  {{end}}
</div>
{{end}}
</body>
</html>

{{define "slipRegion"}}
<div class="slip-header">
  <div class="header-zones">
    <div class="header-zone zone-shipto">{{.Header.ShipTo}}{{if .Header.Personalized}}<div class="pers-flag">PERSONALIZED</div>{{end}}</div>
    <div class="header-zone zone-art">
      {{if .Header.Artwork}}{{if .Header.Artwork.DataURL}}<img class="art-img" src="{{.Header.Artwork.DataURL}}">{{end}}{{end}}
    </div>
    <div class="header-zone zone-meta">
      <div class="meta-line"><span class="meta-label">Order</span>{{.Header.DisplayNumber}}</div>
      {{if ne .Header.FulfillmentID .Header.DisplayNumber}}<div class="meta-line"><span class="meta-label">Ref</span>{{.Header.FulfillmentID}}</div>{{end}}
      {{if .Header.DateText}}<div class="meta-line"><span class="meta-label">Date</span>{{.Header.DateText}}</div>{{end}}
      {{if .Header.PONumber}}<div class="meta-line"><span class="meta-label">PO</span>{{.Header.PONumber}}</div>{{end}}
      {{if .Header.Memo}}<div class="meta-line"><span class="meta-label">Memo</span>{{.Header.Memo}}</div>{{end}}
      {{if .Header.ZoneName}}<div class="zone-badge">{{.Header.ZoneName}}</div>{{end}}
    </div>
  </div>
</div>
<table class="items">
  <thead>
    <tr><th></th><th>Item</th><th>Barcode</th><th>Bin</th><th>Color</th><th>Size</th><th>Qty</th></tr>
  </thead>
  <tbody>
    {{range .Rows}}
    <tr>
      <td class="col-img">{{if .Image.DataURL}}<img src="{{.Image.DataURL}}">{{end}}</td>
      <td class="col-item"><div class="item-sku">{{.SKU}}</div>{{if .Description}}<div class="item-desc">{{.Description}}</div>{{end}}</td>
      <td class="col-barcode">{{if .Barcode.DataURL}}<img src="{{.Barcode.DataURL}}">{{else if .Barcode.Value}}<span class="barcode-text">{{.Barcode.Value}}</span>{{end}}</td>
      <td>{{.Bin}}</td>
      <td>{{.Color}}</td>
      <td>{{.Size}}</td>
      <td class="col-qty">{{.Quantity}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
<div class="slip-footer">
  {{if .Footer.Tracking}}
    <div class="footer-tracking">
      {{if .Footer.Tracking.DataURL}}<img src="{{.Footer.Tracking.DataURL}}">{{else}}<span class="barcode-text">{{.Footer.Tracking.Value}}</span>{{end}}
    </div>
  {{end}}
  {{if .Footer.PageLabel}}<div class="footer-page">{{.Footer.PageLabel}}</div>{{end}}
</div>
{{end}}

{{define "picklistPage"}}
<div class="pick-header">
  <h1>Pick List</h1>
  <div class="pick-cols">
    <span class="pick-loc">Bin</span><span class="pick-sku">SKU</span><span class="pick-qty">Qty</span><span class="pick-break">Orders</span>
    <span class="pick-loc">Bin</span><span class="pick-sku">SKU</span><span class="pick-qty">Qty</span><span class="pick-break">Orders</span>
  </div>
</div>
{{range .Blocks}}
<div class="pick-block">
  {{$b := .}}
  {{range seq .Rows}}
  <div class="pick-row">
    {{template "pickHalf" (pickEntry $b.Personalized .)}}
    {{template "pickHalf" (pickEntry $b.Standard .)}}
  </div>
  {{end}}
</div>
{{end}}
{{end}}

{{define "pickHalf"}}
{{if .}}
  <span class="pick-cell pick-loc">{{.Location}}</span>
  <span class="pick-cell pick-sku">{{.SKU}}</span>
  <span class="pick-cell pick-qty">{{.TotalQuantity}}</span>
  <span class="pick-cell pick-break">{{range $i, $q := .Breakdown}}{{if $i}}, {{end}}{{$q.FulfillmentID}}&times;{{$q.Quantity}}{{end}}</span>
{{else}}
  <span class="pick-cell pick-loc"></span>
  <span class="pick-cell pick-sku"></span>
  <span class="pick-cell pick-qty"></span>
  <span class="pick-cell pick-break"></span>
{{end}}
{{end}}
`
