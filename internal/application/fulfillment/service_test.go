package fulfillment

import (
	"context"
	"testing"

	domain "github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/domain/shipping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records []domain.RawLineRecord
	err     error
}

func (f *fakeSource) FetchRecords(context.Context) ([]domain.RawLineRecord, error) {
	return f.records, f.err
}

type fakePrinted struct {
	set map[string]bool
}

func newFakePrinted(ids ...string) *fakePrinted {
	p := &fakePrinted{set: make(map[string]bool)}
	for _, id := range ids {
		p.set[id] = true
	}
	return p
}

func (f *fakePrinted) All(context.Context) (map[string]bool, error) { return f.set, nil }

func (f *fakePrinted) MarkMany(_ context.Context, ids []string) error {
	for _, id := range ids {
		f.set[id] = true
	}
	return nil
}

func (f *fakePrinted) UnmarkMany(_ context.Context, ids []string) error {
	for _, id := range ids {
		delete(f.set, id)
	}
	return nil
}

func (f *fakePrinted) ClearAll(context.Context) error {
	f.set = make(map[string]bool)
	return nil
}

func testCatalog() *domain.BoxSizeCatalog {
	return &domain.BoxSizeCatalog{Entries: []domain.BoxSizeEntry{
		{Key: "2pack", Name: "2 Pack", MaxItems: 2, Combos: [][]string{{"CUP16", "CUP16"}}},
	}}
}

func line(fid, sku, qty, shipTo string) domain.RawLineRecord {
	return domain.RawLineRecord{
		FulfillmentID: fid,
		OrderNumber:   "SO-" + fid,
		SKU:           sku,
		Quantity:      qty,
		ShipTo:        shipTo,
	}
}

const dallasAddr = "Sam Ortiz\n100 Elm St\nDallas, TX 75201"
const laAddr = "Kim Diaz\n9 Palm Ave\nLos Angeles, CA 90001"

func newTestService(src *fakeSource, printed *fakePrinted) *OrderService {
	return NewOrderService(src, printed, testCatalog(), shipping.NewAssigner(), nil)
}

func TestRefreshClassifiesAndAssignsZones(t *testing.T) {
	src := &fakeSource{records: []domain.RawLineRecord{
		line("F1", "CUP16-10", "2", dallasAddr),
		line("F2", "CUP16-10", "1", laAddr),
	}}
	svc := newTestService(src, newFakePrinted())

	orders, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "2pack", orders[0].BoxSize)
	assert.Equal(t, "local", orders[0].ZoneID)
	assert.Equal(t, domain.BoxSizeSingles, orders[1].BoxSize)
	assert.Equal(t, "far", orders[1].ZoneID)
}

func TestListFilters(t *testing.T) {
	src := &fakeSource{records: []domain.RawLineRecord{
		line("F1", "CUP16-10", "2", dallasAddr),
		line("F2", "CUP16-10", "1", laAddr),
		line("F3", "MISC-01", "1", dallasAddr),
	}}
	printed := newFakePrinted("F1")
	svc := newTestService(src, printed)
	ctx := context.Background()

	t.Run("unprinted only", func(t *testing.T) {
		f := false
		resp, err := svc.List(ctx, ListOrdersRequest{Printed: &f})
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.Equal(t, "F2", resp.Items[0].FulfillmentID)
	})

	t.Run("printed only", func(t *testing.T) {
		tr := true
		resp, err := svc.List(ctx, ListOrdersRequest{Printed: &tr})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "F1", resp.Items[0].FulfillmentID)
		assert.True(t, resp.Items[0].Printed)
	})

	t.Run("box size bucket", func(t *testing.T) {
		resp, err := svc.List(ctx, ListOrdersRequest{BoxSize: "2pack"})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "F1", resp.Items[0].FulfillmentID)
	})

	t.Run("unclassified is its own bucket", func(t *testing.T) {
		resp, err := svc.List(ctx, ListOrdersRequest{BoxSize: BoxSizeUnclassifiedFilter})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "F3", resp.Items[0].FulfillmentID)
	})

	t.Run("zone sort nearest first", func(t *testing.T) {
		resp, err := svc.List(ctx, ListOrdersRequest{SortByZone: true})
		require.NoError(t, err)
		require.Len(t, resp.Items, 3)
		assert.Equal(t, "local", resp.Items[0].ZoneID)
		assert.Equal(t, "far", resp.Items[2].ZoneID)
	})
}

func TestSelectByIDs(t *testing.T) {
	src := &fakeSource{records: []domain.RawLineRecord{
		line("F1", "CUP16-10", "1", dallasAddr),
		line("F2", "CUP16-10", "1", dallasAddr),
	}}
	svc := newTestService(src, newFakePrinted())

	selected, missing, err := svc.SelectByIDs(context.Background(), []string{"F2", "F9"})
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "F2", selected[0].FulfillmentID)
	assert.Equal(t, []string{"F9"}, missing)
}

func TestPrintedMutations(t *testing.T) {
	printed := newFakePrinted()
	svc := newTestService(&fakeSource{}, printed)
	ctx := context.Background()

	require.NoError(t, svc.MarkPrinted(ctx, []string{"F1", "F2"}))
	assert.Len(t, printed.set, 2)

	require.NoError(t, svc.UnmarkPrinted(ctx, []string{"F1"}))
	assert.Equal(t, map[string]bool{"F2": true}, printed.set)

	require.NoError(t, svc.ClearPrinted(ctx))
	assert.Empty(t, printed.set)
}
