package handler

import (
	appfulfillment "github.com/packhouse/backend/internal/application/fulfillment"
	"github.com/gin-gonic/gin"
)

// OrderHandler serves the order work queue and printed-status actions
type OrderHandler struct {
	BaseHandler
	orders *appfulfillment.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders *appfulfillment.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List returns the refreshed, enriched order queue
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	var req appfulfillment.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	resp, err := h.orders.List(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// printedRequest carries order identifiers for printed-status actions
type printedRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1,dive,required,trimmed"`
}

// Mark records the given orders as printed
// POST /api/v1/printed
func (h *OrderHandler) Mark(c *gin.Context) {
	var req printedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.orders.MarkPrinted(c.Request.Context(), req.OrderIDs); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"marked": len(req.OrderIDs)})
}

// Unmark removes the printed marker from the given orders
// DELETE /api/v1/printed
func (h *OrderHandler) Unmark(c *gin.Context) {
	var req printedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	if err := h.orders.UnmarkPrinted(c.Request.Context(), req.OrderIDs); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"unmarked": len(req.OrderIDs)})
}

// Clear removes every printed marker
// DELETE /api/v1/printed/all
func (h *OrderHandler) Clear(c *gin.Context) {
	if err := h.orders.ClearPrinted(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
