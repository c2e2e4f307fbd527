package fulfillment

import (
	"time"
)

// ProcessedOrder is one canonical shippable order built from a group of
// raw line records sharing a fulfillment identifier. Built once per data
// refresh and treated as read-only afterwards; there is no persistent
// identity across refreshes beyond the fulfillment key.
type ProcessedOrder struct {
	FulfillmentID string
	DisplayNumber string // resolved through the order-number fallback chain
	CreatedDate   time.Time
	ShipTo        string
	Personalized  bool // true when any contributing record carries the flag

	// Items preserves the raw row order for display.
	Items []OrderItem

	// CupSizes holds the distinct size codes present, sorted ascending.
	CupSizes []string

	// BoxSize is the pack-size category key, or empty when no catalog
	// combination matched (unclassified).
	BoxSize string

	ShippingMethod string
	PONumber       string
	Memo           string
	TrackingID     string
	ArtworkURL     string

	// Shipping zone enrichment, advisory only.
	ZoneID   string
	ZoneName string
	Miles    *float64
}

// HasCupSize reports whether the given size code occurs in the order.
func (o *ProcessedOrder) HasCupSize(code string) bool {
	for _, s := range o.CupSizes {
		if s == code {
			return true
		}
	}
	return false
}

// ItemCount returns the total unit count across all items.
func (o *ProcessedOrder) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// ZoneDisplayName returns the zone name for display, never empty.
func (o *ProcessedOrder) ZoneDisplayName() string {
	if o.ZoneName == "" {
		return "Unknown"
	}
	return o.ZoneName
}
