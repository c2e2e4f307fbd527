package layout

// Fixed physical page geometry, in points (1/72in). Letter paper with
// half-inch margins is a business rule here, not configuration.
const (
	PageWidthPt  = 612.0 // 8.5in
	PageHeightPt = 792.0 // 11in
	MarginPt     = 36.0  // 0.5in

	ContentWidthPt  = PageWidthPt - 2*MarginPt
	ContentHeightPt = PageHeightPt - 2*MarginPt
)

// Packing-slip block heights.
const (
	// SlipHeaderHeightPt covers the three-zone header band plus the item
	// table column headers, both re-rendered on every overflow page.
	SlipHeaderHeightPt = 174.0
	// SlipRowHeightPt is the fixed height of one item row, sized for the
	// image thumbnail column.
	SlipRowHeightPt = 72.0
	// SlipFooterReservePt keeps room for the tracking barcode and page
	// label at the bottom of each page.
	SlipFooterReservePt = 60.0

	// SlipImageBoxPt bounds item thumbnails; artwork in the header gets
	// the same box.
	SlipImageBoxPt = 60.0
)

// Two-up geometry: two compact slips per page around a cut guide.
const (
	// CutGuideHeightPt is the vertical zone of the solid-plus-dashed
	// guide line.
	CutGuideHeightPt = 12.0
	// TrimPaddingPt is extra top padding below the guide so the bottom
	// half keeps a margin after cutting.
	TrimPaddingPt = 18.0
	// TwoUpRegionHeightPt is the content height of each half.
	TwoUpRegionHeightPt = (ContentHeightPt - CutGuideHeightPt - TrimPaddingPt) / 2
)

// Picklist block heights.
const (
	// PicklistHeaderHeightPt covers the two side-by-side column headers.
	PicklistHeaderHeightPt = 40.0
	// PicklistRowHeightPt is one sub-row inside a base-SKU block.
	PicklistRowHeightPt = 26.0
	// PicklistBlockPaddingPt separates consecutive base-SKU blocks.
	PicklistBlockPaddingPt = 8.0
)
