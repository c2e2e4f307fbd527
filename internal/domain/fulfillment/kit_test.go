package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateKits(t *testing.T) {
	t.Run("drops exploded components matching a kit base SKU", func(t *testing.T) {
		records := []RawLineRecord{
			{SKU: "KIT01-PERS", IsKit: true},
			{SKU: "KIT01", Quantity: "2"}, // exploded component, double-counts
			{SKU: "DPT16"},
		}
		got := DeduplicateKits(records)
		assert.Len(t, got, 2)
		assert.Equal(t, "KIT01-PERS", got[0].SKU)
		assert.Equal(t, "DPT16", got[1].SKU)
	})

	t.Run("base SKU match is case-sensitive", func(t *testing.T) {
		records := []RawLineRecord{
			{SKU: "KIT01-PERS", IsKit: true},
			{SKU: "kit01"},
		}
		got := DeduplicateKits(records)
		assert.Len(t, got, 2)
	})

	t.Run("no kits leaves the group untouched", func(t *testing.T) {
		records := []RawLineRecord{{SKU: "DPT10"}, {SKU: "DPT16"}}
		assert.Equal(t, records, DeduplicateKits(records))
	})

	t.Run("idempotent", func(t *testing.T) {
		records := []RawLineRecord{
			{SKU: "KIT01-PERS", IsKit: true},
			{SKU: "KIT01"},
			{SKU: "DPT16"},
		}
		once := DeduplicateKits(records)
		twice := DeduplicateKits(once)
		assert.Equal(t, once, twice)
	})
}
