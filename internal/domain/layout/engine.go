package layout

import (
	"fmt"
	"strings"

	"github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/domain/picklist"
)

// Engine paginates processed orders into print-ready page models. It
// performs no I/O: asset references stay unresolved and rendering happens
// in infrastructure.
type Engine struct {
	// TwoUpSmallestPack additionally pairs orders of the smallest fixed
	// pack category, not just "singles".
	TwoUpSmallestPack bool
	// SmallestPackKey names that category when the variant is enabled.
	SmallestPackKey string
}

// Build assembles the full page sequence for the requested artifact.
// Combined mode emits every picklist page first, then every packing-slip
// page; each page is its own physical sheet, so the break between the two
// halves is structural.
func (e *Engine) Build(kind Kind, orders []fulfillment.ProcessedOrder) Document {
	doc := Document{Kind: kind}
	switch kind {
	case KindPicklist:
		doc.Pages = e.BuildPicklistPages(picklist.BuildBlocks(orders))
	case KindSlips:
		doc.Pages = e.BuildSlipPages(orders)
	case KindCombined:
		doc.Pages = e.BuildPicklistPages(picklist.BuildBlocks(orders))
		doc.Pages = append(doc.Pages, e.BuildSlipPages(orders)...)
	}
	return doc
}

// BuildSlipPages lays out one slip per order. Two-up candidates are
// consumed two at a time in input order onto shared pages; every other
// order gets dedicated full pages with header and table-header re-rendered
// on each overflow page.
func (e *Engine) BuildSlipPages(orders []fulfillment.ProcessedOrder) []Page {
	var pages []Page
	var pending *fulfillment.ProcessedOrder

	for i := range orders {
		o := &orders[i]
		if e.twoUpCandidate(o) {
			if pending == nil {
				pending = o
				continue
			}
			pages = append(pages, e.twoUpPage(pending, o))
			pending = nil
			continue
		}
		pages = append(pages, e.fullSlipPages(o)...)
	}
	// An odd leftover candidate renders full-page alone.
	if pending != nil {
		pages = append(pages, e.fullSlipPages(pending)...)
	}
	return pages
}

func (e *Engine) twoUpCandidate(o *fulfillment.ProcessedOrder) bool {
	if o.BoxSize == fulfillment.BoxSizeSingles {
		return true
	}
	return e.TwoUpSmallestPack && e.SmallestPackKey != "" && o.BoxSize == e.SmallestPackKey
}

// fullSlipPages paginates one order onto as many dedicated pages as its
// item rows need.
func (e *Engine) fullSlipPages(o *fulfillment.ProcessedOrder) []Page {
	rows := buildSlipRows(o.Items)
	heights := make([]float64, len(rows))
	for i := range heights {
		heights[i] = SlipRowHeightPt
	}

	pg := Paginator{
		ContentHeight: ContentHeightPt,
		HeaderHeight:  SlipHeaderHeightPt,
		FooterReserve: SlipFooterReservePt,
	}
	ranges := pg.Paginate(heights)
	total := len(ranges)

	pages := make([]Page, 0, total)
	for n, idxs := range ranges {
		region := SlipRegion{
			Header: buildSlipHeader(o),
			Footer: buildSlipFooter(o, fmt.Sprintf("Page %d of %d", n+1, total)),
		}
		for _, i := range idxs {
			region.Rows = append(region.Rows, rows[i])
		}
		pages = append(pages, Page{Slips: []SlipRegion{region}})
	}
	return pages
}

// twoUpPage packs two compact orders onto one page around the cut guide.
// The compact layout omits the page label.
func (e *Engine) twoUpPage(top, bottom *fulfillment.ProcessedOrder) Page {
	return Page{
		CutGuide: true,
		Slips: []SlipRegion{
			{
				Header: buildSlipHeader(top),
				Rows:   buildSlipRows(top.Items),
				Footer: buildSlipFooter(top, ""),
				Half:   true,
			},
			{
				Header: buildSlipHeader(bottom),
				Rows:   buildSlipRows(bottom.Items),
				Footer: buildSlipFooter(bottom, ""),
				Half:   true,
			},
		},
	}
}

func buildSlipRows(items []fulfillment.OrderItem) []SlipRow {
	rows := make([]SlipRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, SlipRow{
			Image:       ImageSlot{URL: it.ImageURL, BoxPt: SlipImageBoxPt},
			SKU:         it.SKU,
			Description: it.Description,
			Barcode:     BarcodeSlot{Value: it.Barcode},
			Bin:         it.PickLocation,
			Color:       it.Color,
			Size:        it.SizeCode,
			Quantity:    it.Quantity,
		})
	}
	return rows
}

func buildSlipHeader(o *fulfillment.ProcessedOrder) SlipHeader {
	h := SlipHeader{
		ShipTo:        o.ShipTo,
		DisplayNumber: o.DisplayNumber,
		FulfillmentID: o.FulfillmentID,
		PONumber:      o.PONumber,
		Memo:          o.Memo,
		Personalized:  o.Personalized,
		ZoneName:      o.ZoneDisplayName(),
	}
	if !o.CreatedDate.IsZero() {
		h.DateText = o.CreatedDate.Format("01/02/2006")
	}
	if o.ArtworkURL != "" {
		h.Artwork = &ImageSlot{URL: o.ArtworkURL, BoxPt: SlipImageBoxPt}
	}
	return h
}

func buildSlipFooter(o *fulfillment.ProcessedOrder, pageLabel string) SlipFooter {
	f := SlipFooter{PageLabel: pageLabel}
	if o.TrackingID != "" && !terminalShippingMethod(o.ShippingMethod) {
		f.Tracking = &BarcodeSlot{Value: o.TrackingID}
	}
	return f
}

// terminalShippingMethod reports whether the order never travels with a
// scannable carrier label: freight and local pickup end at the dock.
func terminalShippingMethod(method string) bool {
	m := strings.ToLower(method)
	return strings.Contains(m, "freight") || strings.Contains(m, "pickup")
}

// BuildPicklistPages distributes base-SKU blocks onto pages, re-rendering
// both column headers whenever a block no longer fits.
func (e *Engine) BuildPicklistPages(blocks []picklist.Block) []Page {
	heights := make([]float64, len(blocks))
	for i, b := range blocks {
		heights[i] = float64(b.Rows())*PicklistRowHeightPt + PicklistBlockPaddingPt
	}

	pg := Paginator{
		ContentHeight: ContentHeightPt,
		HeaderHeight:  PicklistHeaderHeightPt,
	}
	ranges := pg.Paginate(heights)

	pages := make([]Page, 0, len(ranges))
	for _, idxs := range ranges {
		pp := &PicklistPage{}
		for _, i := range idxs {
			b := blocks[i]
			pp.Blocks = append(pp.Blocks, PicklistBlock{
				BaseSKU:      b.BaseSKU,
				Personalized: b.Personalized,
				Standard:     b.Standard,
				Rows:         b.Rows(),
			})
		}
		pages = append(pages, Page{Picklist: pp})
	}
	return pages
}
