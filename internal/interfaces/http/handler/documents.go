package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/packhouse/backend/internal/application/documents"
	appfulfillment "github.com/packhouse/backend/internal/application/fulfillment"
	"github.com/packhouse/backend/internal/domain/layout"
	"github.com/gin-gonic/gin"
)

// DocumentHandler serves print-document generation
type DocumentHandler struct {
	BaseHandler
	orders    *appfulfillment.OrderService
	documents *documents.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(orders *appfulfillment.OrderService, docs *documents.DocumentService) *DocumentHandler {
	return &DocumentHandler{orders: orders, documents: docs}
}

// generateRequest selects the artifact and the orders to include
type generateRequest struct {
	Kind     string   `json:"kind" binding:"required,oneof=slips picklist combined"`
	OrderIDs []string `json:"order_ids" binding:"required,min=1,dive,required,trimmed"`
}

// Generate builds a PDF for the selected orders and streams it back
// POST /api/v1/documents
func (h *DocumentHandler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	selected, missing, err := h.orders.SelectByIDs(c.Request.Context(), req.OrderIDs)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if len(missing) > 0 {
		h.BadRequest(c, "unknown order ids: "+strings.Join(missing, ", "))
		return
	}

	gd, err := h.documents.Generate(c.Request.Context(), layout.Kind(req.Kind), selected)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("%s.pdf", req.Kind)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("X-Page-Count", fmt.Sprintf("%d", gd.PageCount))
	c.Data(http.StatusOK, "application/pdf", gd.PDFData)
}
