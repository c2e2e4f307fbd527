package picklist

import (
	"testing"

	"github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, items ...fulfillment.OrderItem) fulfillment.ProcessedOrder {
	return fulfillment.ProcessedOrder{FulfillmentID: id, Items: items}
}

func TestBuildBlocks(t *testing.T) {
	t.Run("sums quantities per location and SKU with breakdown", func(t *testing.T) {
		blocks := BuildBlocks([]fulfillment.ProcessedOrder{
			order("F1", fulfillment.OrderItem{SKU: "CUP-PERS", PickLocation: "A1", Quantity: 2}),
			order("F2", fulfillment.OrderItem{SKU: "CUP-PERS", PickLocation: "A1", Quantity: 3}),
		})
		require.Len(t, blocks, 1)
		require.Len(t, blocks[0].Personalized, 1)

		e := blocks[0].Personalized[0]
		assert.Equal(t, "A1", e.Location)
		assert.Equal(t, "CUP-PERS", e.SKU)
		assert.Equal(t, 5, e.TotalQuantity)
		require.Len(t, e.Breakdown, 2)
		assert.Equal(t, OrderQuantity{FulfillmentID: "F1", Quantity: 2}, e.Breakdown[0])
		assert.Equal(t, OrderQuantity{FulfillmentID: "F2", Quantity: 3}, e.Breakdown[1])
	})

	t.Run("splits families and unions base SKUs", func(t *testing.T) {
		blocks := BuildBlocks([]fulfillment.ProcessedOrder{
			order("F1",
				fulfillment.OrderItem{SKU: "CUP-PERS", PickLocation: "B2", Quantity: 1},
				fulfillment.OrderItem{SKU: "CUP", PickLocation: "C9", Quantity: 4},
				fulfillment.OrderItem{SKU: "LID", PickLocation: "A1", Quantity: 1},
			),
		})
		require.Len(t, blocks, 2)

		// CUP sorts by its personalized location B2, so LID (A1) leads.
		assert.Equal(t, "LID", blocks[0].BaseSKU)
		assert.Equal(t, "CUP", blocks[1].BaseSKU)
		assert.Len(t, blocks[1].Personalized, 1)
		assert.Len(t, blocks[1].Standard, 1)
	})

	t.Run("personalized family location preferred for sorting", func(t *testing.T) {
		blocks := BuildBlocks([]fulfillment.ProcessedOrder{
			order("F1",
				fulfillment.OrderItem{SKU: "AAA-PERS", PickLocation: "Z9", Quantity: 1},
				fulfillment.OrderItem{SKU: "AAA", PickLocation: "A1", Quantity: 1},
				fulfillment.OrderItem{SKU: "BBB", PickLocation: "M5", Quantity: 1},
			),
		})
		require.Len(t, blocks, 2)
		// AAA sorts by Z9 (personalized side), not A1, so BBB leads.
		assert.Equal(t, "BBB", blocks[0].BaseSKU)
		assert.Equal(t, "AAA", blocks[1].BaseSKU)
	})

	t.Run("unresolved locations sort last, base SKU breaks ties", func(t *testing.T) {
		blocks := BuildBlocks([]fulfillment.ProcessedOrder{
			order("F1",
				fulfillment.OrderItem{SKU: "NOWHERE", PickLocation: "", Quantity: 1},
				fulfillment.OrderItem{SKU: "SOMEWHERE", PickLocation: "D4", Quantity: 1},
			),
		})
		require.Len(t, blocks, 2)
		assert.Equal(t, "SOMEWHERE", blocks[0].BaseSKU)
		assert.Equal(t, "NOWHERE", blocks[1].BaseSKU)
	})

	t.Run("multiple locations stack as sub-rows and set block height", func(t *testing.T) {
		blocks := BuildBlocks([]fulfillment.ProcessedOrder{
			order("F1",
				fulfillment.OrderItem{SKU: "CUP", PickLocation: "A1", Quantity: 1},
				fulfillment.OrderItem{SKU: "CUP", PickLocation: "B7", Quantity: 2},
				fulfillment.OrderItem{SKU: "CUP-PERS", PickLocation: "A2", Quantity: 1},
			),
		})
		require.Len(t, blocks, 1)
		b := blocks[0]
		assert.Len(t, b.Standard, 2)
		assert.Len(t, b.Personalized, 1)
		assert.Equal(t, 2, b.Rows())
		assert.Equal(t, "A1", b.Standard[0].Location)
		assert.Equal(t, "B7", b.Standard[1].Location)
	})
}
