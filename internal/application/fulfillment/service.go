package fulfillment

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/domain/shipping"
	"go.uber.org/zap"
)

// OrderService rebuilds the order work queue on every call: raw line
// records from the order source are aggregated into canonical orders,
// classified into pack-size categories and enriched with shipping zones.
// Orders have no persistent identity across refreshes; only the printed
// markers survive in their own store.
type OrderService struct {
	source   domain.RecordSource
	printed  domain.PrintedStatusStore
	catalog  *domain.BoxSizeCatalog
	assigner *shipping.Assigner
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	source domain.RecordSource,
	printed domain.PrintedStatusStore,
	catalog *domain.BoxSizeCatalog,
	assigner *shipping.Assigner,
	logger *zap.Logger,
) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderService{
		source:   source,
		printed:  printed,
		catalog:  catalog,
		assigner: assigner,
		logger:   logger,
	}
}

// Refresh fetches the current snapshot and rebuilds every processed order.
func (s *OrderService) Refresh(ctx context.Context) ([]domain.ProcessedOrder, error) {
	records, err := s.source.FetchRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order lines: %w", err)
	}

	orders := domain.Aggregate(records)
	for i := range orders {
		o := &orders[i]
		o.BoxSize = s.catalog.Classify(o.Items)
		zone := s.assigner.Assign(o.ShipTo)
		o.ZoneID = zone.ID
		o.ZoneName = zone.Name
		o.Miles = zone.Miles
	}

	s.logger.Info("order queue refreshed",
		zap.Int("records", len(records)),
		zap.Int("orders", len(orders)))
	return orders, nil
}

// List refreshes the queue and applies the requested filters and sort.
func (s *OrderService) List(ctx context.Context, req ListOrdersRequest) (*ListOrdersResponse, error) {
	orders, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	printedSet, err := s.printed.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read printed status: %w", err)
	}

	filtered := make([]domain.ProcessedOrder, 0, len(orders))
	for _, o := range orders {
		if req.Printed != nil && printedSet[o.FulfillmentID] != *req.Printed {
			continue
		}
		if req.BoxSize != "" && !matchesBoxSize(o.BoxSize, req.BoxSize) {
			continue
		}
		filtered = append(filtered, o)
	}

	if req.SortByZone {
		sort.SliceStable(filtered, func(i, j int) bool {
			return shipping.RankOf(filtered[i].ZoneID) < shipping.RankOf(filtered[j].ZoneID)
		})
	}

	resp := &ListOrdersResponse{Total: len(filtered)}
	for i := range filtered {
		resp.Items = append(resp.Items, toOrderResponse(&filtered[i], printedSet[filtered[i].FulfillmentID]))
	}
	return resp, nil
}

// SelectByIDs refreshes the queue and returns the orders matching the
// given fulfillment identifiers, in queue order. Unknown identifiers are
// reported, not silently dropped.
func (s *OrderService) SelectByIDs(ctx context.Context, ids []string) ([]domain.ProcessedOrder, []string, error) {
	orders, err := s.Refresh(ctx)
	if err != nil {
		return nil, nil, err
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	selected := make([]domain.ProcessedOrder, 0, len(ids))
	for _, o := range orders {
		if wanted[o.FulfillmentID] {
			selected = append(selected, o)
			delete(wanted, o.FulfillmentID)
		}
	}

	missing := make([]string, 0, len(wanted))
	for _, id := range ids {
		if wanted[id] {
			missing = append(missing, id)
		}
	}
	return selected, missing, nil
}

// MarkPrinted records the given orders as printed.
func (s *OrderService) MarkPrinted(ctx context.Context, ids []string) error {
	if err := s.printed.MarkMany(ctx, ids); err != nil {
		return fmt.Errorf("failed to mark printed: %w", err)
	}
	s.logger.Info("orders marked printed", zap.Int("count", len(ids)))
	return nil
}

// UnmarkPrinted removes the printed marker from the given orders.
func (s *OrderService) UnmarkPrinted(ctx context.Context, ids []string) error {
	if err := s.printed.UnmarkMany(ctx, ids); err != nil {
		return fmt.Errorf("failed to unmark printed: %w", err)
	}
	s.logger.Info("orders unmarked printed", zap.Int("count", len(ids)))
	return nil
}

// ClearPrinted removes every printed marker.
func (s *OrderService) ClearPrinted(ctx context.Context) error {
	if err := s.printed.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear printed markers: %w", err)
	}
	s.logger.Info("printed markers cleared")
	return nil
}

func matchesBoxSize(actual, filter string) bool {
	if filter == BoxSizeUnclassifiedFilter {
		return actual == domain.BoxSizeUnclassified
	}
	return actual == filter
}
