package assets

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	// maxImageBytes bounds a single fetched image body.
	maxImageBytes = 10 << 20
	// imageDPI converts point-sized bounding boxes into print-fidelity
	// pixel boxes.
	imageDPI = 300

	defaultFetchTimeout = 15 * time.Second
)

// Cache stores fetched-and-scaled image payloads between generation
// passes. Implementations live in infrastructure/cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}

// ImageFetcher downloads remote image references, downsamples them where
// the host supports it, and scales them into bounding boxes for embedding.
type ImageFetcher struct {
	client *http.Client
	cache  Cache
	logger *zap.Logger
}

// ImageFetcherOption configures the fetcher.
type ImageFetcherOption func(*ImageFetcher)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(c *http.Client) ImageFetcherOption {
	return func(f *ImageFetcher) { f.client = c }
}

// WithCache attaches an asset cache.
func WithCache(c Cache) ImageFetcherOption {
	return func(f *ImageFetcher) { f.cache = c }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) ImageFetcherOption {
	return func(f *ImageFetcher) { f.logger = l }
}

// NewImageFetcher creates an ImageFetcher.
func NewImageFetcher(opts ...ImageFetcherOption) *ImageFetcher {
	f := &ImageFetcher{
		client: &http.Client{Timeout: defaultFetchTimeout},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchDataURL fetches the image at src, fits it into a square bounding
// box of boxPt points preserving aspect ratio, and returns a PNG data URL.
func (f *ImageFetcher) FetchDataURL(ctx context.Context, src string, boxPt float64) (string, error) {
	boxPx := int(boxPt / 72 * imageDPI)
	key := fmt.Sprintf("img:%d:%s", boxPx, src)

	if f.cache != nil {
		if data, ok := f.cache.Get(ctx, key); ok {
			return pngDataURL(data), nil
		}
	}

	fetchURL := downsampleURL(src, boxPx)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", fmt.Errorf("read image body: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	fitted := imaging.Fit(img, boxPx, boxPx, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, fitted); err != nil {
		return "", fmt.Errorf("encode image png: %w", err)
	}

	if f.cache != nil {
		f.cache.Set(ctx, key, buf.Bytes())
	}
	return pngDataURL(buf.Bytes()), nil
}

// downsampleHosts lists image hosts that honor a width query parameter,
// letting the server shrink the payload before it crosses the wire.
var downsampleHosts = map[string]string{
	"cdn.shopify.com": "width",
	"imgix.net":       "w",
}

// downsampleURL appends a width hint for hosts known to support one.
func downsampleURL(src string, boxPx int) string {
	u, err := url.Parse(src)
	if err != nil {
		return src
	}
	for host, param := range downsampleHosts {
		if strings.Contains(u.Host, host) {
			q := u.Query()
			q.Set(param, fmt.Sprintf("%d", boxPx))
			u.RawQuery = q.Encode()
			return u.String()
		}
	}
	return src
}
