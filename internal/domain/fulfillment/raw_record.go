package fulfillment

// RawLineRecord is one line-item row as delivered by the external
// order-management adapter. The field set is a fixed external contract:
// names and shapes must not change without coordinating with the adapter.
type RawLineRecord struct {
	// Order-level fields, repeated on every line of the same order
	FulfillmentID  string `json:"fulfillment_id"`
	OrderNumber    string `json:"order_number"`
	AltOrderNumber string `json:"alt_order_number"`
	OrderDate      string `json:"order_date"` // intended order date, preferred
	CreatedAt      string `json:"created_at"` // system creation timestamp
	ShipTo         string `json:"ship_to"`
	ShippingMethod string `json:"shipping_method"`
	PONumber       string `json:"po_number"`
	Memo           string `json:"memo"`
	TrackingID     string `json:"tracking_id"`
	ArtworkURL     string `json:"artwork_url"`

	// Line-level fields
	SKU string `json:"sku"`
	// ImageOrDesc is dual-purpose: either an image URL or free-text
	// description, disambiguated during normalization.
	ImageOrDesc  string `json:"image_or_desc"`
	AltImage1    string `json:"alt_image_1"`
	AltImage2    string `json:"alt_image_2"`
	AltImage3    string `json:"alt_image_3"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	PickLocation string `json:"pick_location"`
	Barcode      string `json:"barcode"`
	Quantity     string `json:"quantity"` // quantity as text, parsed leniently

	IsKit        bool `json:"is_kit"`
	Personalized bool `json:"personalized"`
}

// PersonalizationSuffix marks a SKU variant carrying customer
// personalization. Stripping it yields the base SKU used for kit
// deduplication and picklist cross-referencing.
const PersonalizationSuffix = "-PERS"
