package documents

import (
	"context"
	"fmt"
	"time"

	"github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/domain/layout"
	"github.com/packhouse/backend/internal/domain/shared"
	"github.com/packhouse/backend/internal/infrastructure/assets"
	"github.com/packhouse/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// GeneratedDocument is one finished print artifact, emitted in a single
// piece after the whole pipeline succeeded.
type GeneratedDocument struct {
	PDFData   []byte
	PageCount int
	Duration  time.Duration
}

// DocumentService drives one generation pass: layout the selected orders
// into page models, resolve image and barcode assets, render to HTML and
// print to PDF. The pass is single-threaded and holds the whole document
// in memory; any failure past asset resolution aborts with no partial
// output.
type DocumentService struct {
	engine   *layout.Engine
	resolver *assets.Resolver
	html     *printing.HTMLBuilder
	renderer printing.PDFRenderer
	logger   *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	engine *layout.Engine,
	resolver *assets.Resolver,
	html *printing.HTMLBuilder,
	renderer printing.PDFRenderer,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		engine:   engine,
		resolver: resolver,
		html:     html,
		renderer: renderer,
		logger:   logger,
	}
}

// Generate builds the requested artifact from the selected orders. An
// empty selection fails fast before any work happens.
func (s *DocumentService) Generate(ctx context.Context, kind layout.Kind, orders []fulfillment.ProcessedOrder) (*GeneratedDocument, error) {
	if len(orders) == 0 {
		return nil, shared.ErrEmptySelection
	}
	if !kind.Valid() {
		return nil, shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("unknown document kind %q", kind))
	}

	start := time.Now()

	doc := s.engine.Build(kind, orders)
	s.resolver.ResolveDocument(ctx, &doc)

	html, err := s.html.BuildHTML(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build document markup: %w", err)
	}

	result, err := s.renderer.Render(ctx, &printing.RenderRequest{
		HTML:  html,
		Title: string(kind),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	gd := &GeneratedDocument{
		PDFData:   result.PDFData,
		PageCount: len(doc.Pages),
		Duration:  time.Since(start),
	}
	s.logger.Info("document generated",
		zap.String("kind", string(kind)),
		zap.Int("orders", len(orders)),
		zap.Int("pages", gd.PageCount),
		zap.Duration("duration", gd.Duration))
	return gd, nil
}
