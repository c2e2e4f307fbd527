package fulfillment

import (
	"sort"
	"strings"
	"time"

	"github.com/packhouse/backend/internal/domain/shared"
)

// dateLayouts are tried in order when parsing the date fields of raw
// records. The external source is not consistent about its format.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Aggregate groups raw line records by fulfillment identifier and builds
// one ProcessedOrder per group. Group order follows the first appearance
// of each fulfillment id in the input; row order inside a group is
// preserved for display.
func Aggregate(records []RawLineRecord) []ProcessedOrder {
	groups := make(map[string][]RawLineRecord)
	var keys []string
	for _, r := range records {
		id := strings.TrimSpace(r.FulfillmentID)
		if id == "" {
			continue
		}
		if _, seen := groups[id]; !seen {
			keys = append(keys, id)
		}
		groups[id] = append(groups[id], r)
	}

	orders := make([]ProcessedOrder, 0, len(keys))
	for _, id := range keys {
		orders = append(orders, buildOrder(id, groups[id]))
	}
	return orders
}

// buildOrder assembles one ProcessedOrder from the records of a single
// order group.
func buildOrder(fulfillmentID string, group []RawLineRecord) ProcessedOrder {
	group = DeduplicateKits(group)

	order := ProcessedOrder{
		FulfillmentID: fulfillmentID,
		Items:         make([]OrderItem, 0, len(group)),
	}

	sizes := make(map[string]struct{})
	for _, r := range group {
		item := NormalizeRecord(r)
		order.Items = append(order.Items, item)
		if item.SizeCode != "" {
			sizes[item.SizeCode] = struct{}{}
		}
		order.Personalized = order.Personalized || r.Personalized
	}

	for s := range sizes {
		order.CupSizes = append(order.CupSizes, s)
	}
	sort.Strings(order.CupSizes)

	head := group[0]
	order.DisplayNumber = shared.Resolve(
		func() string { return head.OrderNumber },
		func() string { return head.AltOrderNumber },
		func() string { return head.FulfillmentID },
	)
	order.CreatedDate = parseDate(shared.FirstNonEmpty(head.OrderDate, head.CreatedAt))
	order.ShipTo = strings.TrimSpace(head.ShipTo)
	order.ShippingMethod = strings.TrimSpace(head.ShippingMethod)
	order.PONumber = strings.TrimSpace(head.PONumber)
	order.Memo = strings.TrimSpace(head.Memo)
	order.TrackingID = strings.TrimSpace(head.TrackingID)
	order.ArtworkURL = strings.TrimSpace(head.ArtworkURL)

	return order
}

// parseDate tries the known source layouts and returns the zero time when
// none matches.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
