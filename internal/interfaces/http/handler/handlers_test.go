package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/packhouse/backend/internal/application/documents"
	appfulfillment "github.com/packhouse/backend/internal/application/fulfillment"
	domain "github.com/packhouse/backend/internal/domain/fulfillment"
	"github.com/packhouse/backend/internal/domain/layout"
	"github.com/packhouse/backend/internal/domain/shared"
	"github.com/packhouse/backend/internal/domain/shipping"
	"github.com/packhouse/backend/internal/infrastructure/assets"
	"github.com/packhouse/backend/internal/infrastructure/printing"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records []domain.RawLineRecord
}

func (f *fakeSource) FetchRecords(context.Context) ([]domain.RawLineRecord, error) {
	return f.records, nil
}

type fakePrinted struct{ set map[string]bool }

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
	f.set = map[string]bool{}
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(_ context.Context, _ *printing.RenderRequest) (*printing.RenderResult, error) {
	return &printing.RenderResult{PDFData: []byte("%PDF-1.7 fake")}, nil
}
func (fakeRenderer) Close() error { return nil }

func setupRouter(t *testing.T) (*gin.Engine, *fakePrinted) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	src := &fakeSource{records: []domain.RawLineRecord{
		{FulfillmentID: "F1", OrderNumber: "SO-1", SKU: "CUP16-10", Quantity: "1",
			ShipTo: "Pat Lee\n1 Main St\nDallas, TX 75201"},
		{FulfillmentID: "F2", OrderNumber: "SO-2", SKU: "CUP16-10", Quantity: "1",
			ShipTo: "Kim Diaz\n2 Palm Ave\nLos Angeles, CA 90001"},
	}}
	printed := &fakePrinted{set: map[string]bool{}}
	catalog := &domain.BoxSizeCatalog{}

	orderSvc := appfulfillment.NewOrderService(src, printed, catalog, shipping.NewAssigner(), nil)

	html, err := printing.NewHTMLBuilder()
	require.NoError(t, err)
	docSvc := documents.NewDocumentService(
		&layout.Engine{},
		assets.NewResolver(assets.NewImageFetcher(), nil),
		html,
		fakeRenderer{},
		nil,
	)

	r := gin.New()
	oh := NewOrderHandler(orderSvc)
	dh := NewDocumentHandler(orderSvc, docSvc)
	r.GET("/api/v1/orders", oh.List)
	r.POST("/api/v1/documents", dh.Generate)
	r.POST("/api/v1/printed", oh.Mark)
	r.DELETE("/api/v1/printed", oh.Unmark)
	r.DELETE("/api/v1/printed/all", oh.Clear)
	return r, printed
}

func TestOrderListEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []struct {
				FulfillmentID string `json:"fulfillment_id"`
				ZoneName      string `json:"zone_name"`
			} `json:"items"`
			Total int `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Equal(t, 2, body.Data.Total)
	assert.Equal(t, "F1", body.Data.Items[0].FulfillmentID)
	assert.Equal(t, "Local", body.Data.Items[0].ZoneName)
}

func TestDocumentGenerateEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("returns a PDF", func(t *testing.T) {
		body := strings.NewReader(`{"kind":"slips","order_ids":["F1","F2"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, "1", w.Header().Get("X-Page-Count"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		body := strings.NewReader(`{"kind":"poster","order_ids":["F1"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown order ids rejected", func(t *testing.T) {
		body := strings.NewReader(`{"kind":"slips","order_ids":["F9"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "F9")
	})

	t.Run("empty selection rejected", func(t *testing.T) {
		body := strings.NewReader(`{"kind":"slips","order_ids":[]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPrintedEndpoints(t *testing.T) {
	r, printed := setupRouter(t)

	mark := strings.NewReader(`{"order_ids":["F1"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/printed", mark)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, printed.set["F1"])

	unmark := strings.NewReader(`{"order_ids":["F1"]}`)
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/printed", unmark)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, printed.set)

	printed.set["F2"] = true
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/printed/all", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, printed.set)
}

func TestHandleErrorMapsDomainCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var h BaseHandler

	r := gin.New()
	r.GET("/boom", func(c *gin.Context) {
		h.HandleError(c, shared.ErrEmptySelection)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_EMPTY_SELECTION")
}
