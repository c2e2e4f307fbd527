package layout

import (
	"github.com/packhouse/backend/internal/domain/picklist"
)

// Kind selects which print artifact to build.
type Kind string

const (
	KindSlips    Kind = "slips"
	KindPicklist Kind = "picklist"
	KindCombined Kind = "combined"
)

// Valid reports whether the kind is one of the supported artifacts.
func (k Kind) Valid() bool {
	switch k {
	case KindSlips, KindPicklist, KindCombined:
		return true
	}
	return false
}

// ImageSlot is a placed image: a source reference resolved to an
// embeddable data URL by the asset stage before rendering. An empty
// DataURL renders as a blank slot.
type ImageSlot struct {
	URL     string
	DataURL string
	BoxPt   float64 // square bounding box side, aspect ratio preserved
}

// BarcodeSlot is a placed 1-D barcode. When DataURL stays empty after
// asset resolution the raw value is printed as plain text in the slot.
type BarcodeSlot struct {
	Value   string
	DataURL string
}

// SlipRow is one item row of the packing-slip table.
type SlipRow struct {
	Image       ImageSlot
	SKU         string
	Description string
	Barcode     BarcodeSlot
	Bin         string
	Color       string
	Size        string
	Quantity    int
}

// SlipHeader is the three-zone top band of a packing slip, repeated on
// every overflow page of the same order.
type SlipHeader struct {
	ShipTo        string
	Artwork       *ImageSlot // only when the order carries a reference
	DisplayNumber string
	FulfillmentID string
	PONumber      string
	Memo          string
	DateText      string
	Personalized  bool
	ZoneName      string
}

// SlipFooter closes a packing-slip page.
type SlipFooter struct {
	// Tracking is nil when the order has no tracking id or ships by a
	// terminal method (freight, local pickup).
	Tracking *BarcodeSlot
	// PageLabel is "Page X of Y" within one order's slip; empty in the
	// compact two-up layout.
	PageLabel string
}

// SlipRegion is one order's content on one page: the whole page, or one
// half in the two-up layout.
type SlipRegion struct {
	Header SlipHeader
	Rows   []SlipRow
	Footer SlipFooter
	Half   bool
}

// PicklistBlock is one base-SKU block: the personalized family on the
// left, standard on the right, aligned sub-rows, the shorter side padded
// to Rows.
type PicklistBlock struct {
	BaseSKU      string
	Personalized []picklist.Entry
	Standard     []picklist.Entry
	Rows         int
}

// PicklistPage is one page of location-grouped aggregate rows; column
// headers repeat on every page.
type PicklistPage struct {
	Blocks []PicklistBlock
}

// Page is one physical output page.
type Page struct {
	// Slips holds one region, or two in the two-up layout (top first).
	Slips []SlipRegion
	// CutGuide draws the solid-plus-dashed separator between two-up halves.
	CutGuide bool
	// Picklist is set instead of Slips on picklist pages.
	Picklist *PicklistPage
}

// Document is a fully paginated print artifact, ready for rendering.
type Document struct {
	Kind  Kind
	Pages []Page
}
