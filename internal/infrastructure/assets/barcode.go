package assets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Barcode raster size in pixels. Sized for print fidelity at 300dpi on a
// 2in-wide slot, independent of any on-screen preview scale; the 4:1
// aspect ratio is fixed.
const (
	barcodeWidthPx  = 600
	barcodeHeightPx = 150
)

// RenderCode128 renders a value as a Code 128 raster and returns it as a
// PNG data URL. Callers fall back to printing the raw value as text when
// this fails.
func RenderCode128(value string) (string, error) {
	if value == "" {
		return "", fmt.Errorf("barcode value is empty")
	}

	bc, err := code128.Encode(value)
	if err != nil {
		return "", fmt.Errorf("encode code128: %w", err)
	}

	scaled, err := barcode.Scale(bc, barcodeWidthPx, barcodeHeightPx)
	if err != nil {
		return "", fmt.Errorf("scale barcode: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return "", fmt.Errorf("encode barcode png: %w", err)
	}

	return pngDataURL(buf.Bytes()), nil
}

// pngDataURL wraps PNG bytes as an embeddable data URL.
func pngDataURL(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
