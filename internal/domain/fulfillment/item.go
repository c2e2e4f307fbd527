package fulfillment

import "strings"

// OrderItem is one canonical line item. Immutable once built and owned
// exclusively by a single ProcessedOrder.
type OrderItem struct {
	SKU          string
	ClassPrefix  string // 5-char classification prefix, empty when SKU has none
	SizeCode     string // "10oz", "16oz", "26oz" or empty
	Quantity     int    // always >= 1
	Color        string
	ImageURL     string
	Barcode      string
	Description  string
	PickLocation string // trimmed, empty means absent
}

// HasPickLocation reports whether the item carries a usable bin location.
func (i OrderItem) HasPickLocation() bool {
	return i.PickLocation != ""
}

// BaseSKU strips the personalization suffix from a SKU.
func BaseSKU(sku string) string {
	return strings.TrimSuffix(sku, PersonalizationSuffix)
}

// IsPersonalizedSKU reports whether the SKU carries the personalization
// suffix marker.
func IsPersonalizedSKU(sku string) bool {
	return strings.HasSuffix(sku, PersonalizationSuffix)
}
