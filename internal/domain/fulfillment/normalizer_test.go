package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecord(t *testing.T) {
	t.Run("extracts classification prefix and size code", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{SKU: "dpt10-blue", Quantity: "2"})
		assert.Equal(t, "DPT10", item.ClassPrefix)
		assert.Equal(t, "10oz", item.SizeCode)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("rejects prefix that does not match the pattern", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{SKU: "1XY99-thing"})
		assert.Empty(t, item.ClassPrefix)
		assert.Empty(t, item.SizeCode)
	})

	t.Run("unlisted size suffix yields no size", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{SKU: "DPT20-red"})
		assert.Equal(t, "DPT20", item.ClassPrefix)
		assert.Empty(t, item.SizeCode)
	})

	t.Run("dual-purpose field as URL becomes image reference", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{
			SKU:         "DPT16",
			ImageOrDesc: "https://img.example/x.png",
		})
		assert.Equal(t, "https://img.example/x.png", item.ImageURL)
		assert.Empty(t, item.Description)
	})

	t.Run("dual-purpose field as text becomes description", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{
			SKU:         "DPT16",
			ImageOrDesc: "Blue mug, glossy",
		})
		assert.Empty(t, item.ImageURL)
		assert.Equal(t, "Blue mug, glossy", item.Description)
	})

	t.Run("image falls back through alternates in fixed order", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{
			SKU:         "DPT16",
			ImageOrDesc: "some text",
			AltImage2:   "https://img.example/second.png",
			AltImage3:   "https://img.example/third.png",
		})
		assert.Equal(t, "https://img.example/second.png", item.ImageURL)
		assert.Equal(t, "some text", item.Description)
	})

	t.Run("invalid quantity defaults to one", func(t *testing.T) {
		for _, q := range []string{"", "abc", "0", "-3"} {
			item := NormalizeRecord(RawLineRecord{SKU: "DPT10", Quantity: q})
			assert.Equal(t, 1, item.Quantity, "quantity %q", q)
		}
	})

	t.Run("blank pick location treated as absent", func(t *testing.T) {
		item := NormalizeRecord(RawLineRecord{SKU: "DPT10", PickLocation: "   "})
		assert.False(t, item.HasPickLocation())

		item = NormalizeRecord(RawLineRecord{SKU: "DPT10", PickLocation: " A1 "})
		assert.Equal(t, "A1", item.PickLocation)
	})
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, isHTTPURL("http://example.com/a.png"))
	assert.True(t, isHTTPURL("https://example.com/a.png"))
	assert.False(t, isHTTPURL("ftp://example.com/a.png"))
	assert.False(t, isHTTPURL("example.com/a.png"))
	assert.False(t, isHTTPURL("Blue mug, glossy"))
	assert.False(t, isHTTPURL(""))
}
