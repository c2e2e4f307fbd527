package assets

import (
	"context"

	"github.com/packhouse/backend/internal/domain/layout"
	"go.uber.org/zap"
)

// Resolver fills the image and barcode slots of a paginated document
// before rendering. Assets are resolved sequentially in page and row
// order: every slot is settled before the next row is considered, so the
// output order never depends on fetch timing. A failed asset leaves its
// slot blank (images) or falls back to text (barcodes) and the document
// continues; nothing here aborts generation.
type Resolver struct {
	images *ImageFetcher
	logger *zap.Logger
}

// NewResolver creates a Resolver.
func NewResolver(images *ImageFetcher, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{images: images, logger: logger}
}

// ResolveDocument resolves every asset slot in the document in place.
func (r *Resolver) ResolveDocument(ctx context.Context, doc *layout.Document) {
	for pi := range doc.Pages {
		page := &doc.Pages[pi]
		for si := range page.Slips {
			r.resolveRegion(ctx, &page.Slips[si])
		}
	}
}

func (r *Resolver) resolveRegion(ctx context.Context, region *layout.SlipRegion) {
	if region.Header.Artwork != nil {
		r.resolveImage(ctx, region.Header.Artwork)
	}
	for i := range region.Rows {
		row := &region.Rows[i]
		r.resolveImage(ctx, &row.Image)
		r.resolveBarcode(&row.Barcode)
	}
	if region.Footer.Tracking != nil {
		r.resolveBarcode(region.Footer.Tracking)
	}
}

func (r *Resolver) resolveImage(ctx context.Context, slot *layout.ImageSlot) {
	if slot.URL == "" {
		return
	}
	dataURL, err := r.images.FetchDataURL(ctx, slot.URL, slot.BoxPt)
	if err != nil {
		// Blank slot; the document keeps going.
		r.logger.Warn("image asset failed, leaving slot blank",
			zap.String("url", slot.URL),
			zap.Error(err))
		return
	}
	slot.DataURL = dataURL
}

func (r *Resolver) resolveBarcode(slot *layout.BarcodeSlot) {
	if slot.Value == "" {
		return
	}
	dataURL, err := RenderCode128(slot.Value)
	if err != nil {
		// Text fallback: the template prints the raw value instead.
		r.logger.Warn("barcode render failed, falling back to text",
			zap.String("value", slot.Value),
			zap.Error(err))
		return
	}
	slot.DataURL = dataURL
}
