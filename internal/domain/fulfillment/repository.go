package fulfillment

import "context"

// RecordSource supplies raw order-line records from the external
// order-management system. Implementations live in infrastructure.
type RecordSource interface {
	// FetchRecords returns the current open order lines. The result is a
	// snapshot: callers rebuild all ProcessedOrders from it on refresh.
	FetchRecords(ctx context.Context) ([]RawLineRecord, error)
}

// PrintedStatusStore is the external key-presence store recording which
// orders have already had their slips printed. Its lifecycle is
// independent of data refreshes; entries disappear only through explicit
// unmark or clear actions. The processing core consults All for filtering
// and never mutates the store itself; the mutating operations are driven
// by the interface layer.
type PrintedStatusStore interface {
	// All returns the set of order identifiers currently marked printed.
	All(ctx context.Context) (map[string]bool, error)
	// MarkMany records the given order identifiers as printed.
	MarkMany(ctx context.Context, orderIDs []string) error
	// UnmarkMany removes the printed marker from the given identifiers.
	UnmarkMany(ctx context.Context, orderIDs []string) error
	// ClearAll removes every printed marker.
	ClearAll(ctx context.Context) error
}
