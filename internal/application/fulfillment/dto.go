package fulfillment

import (
	domain "github.com/packhouse/backend/internal/domain/fulfillment"
)

// BoxSizeUnclassifiedFilter selects orders whose item mix matched no
// catalog combination. It is a distinct filter bucket, never a default
// category.
const BoxSizeUnclassifiedFilter = "unclassified"

// ListOrdersRequest represents a request to list the current work queue
type ListOrdersRequest struct {
	// Printed filters by printed status when set.
	Printed *bool `form:"printed"`
	// BoxSize filters by pack category key; "unclassified" selects the
	// no-match bucket.
	BoxSize string `form:"box_size"`
	// SortByZone orders the result nearest zone first.
	SortByZone bool `form:"sort_by_zone"`
}

// OrderItemResponse is one line of an order in the list response
type OrderItemResponse struct {
	SKU          string `json:"sku"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	Quantity     int    `json:"quantity"`
	Color        string `json:"color,omitempty"`
	Size         string `json:"size,omitempty"`
	PickLocation string `json:"pick_location,omitempty"`
	Barcode      string `json:"barcode,omitempty"`
}

// OrderResponse represents one processed order in the list response
type OrderResponse struct {
	FulfillmentID  string              `json:"fulfillment_id"`
	DisplayNumber  string              `json:"display_number"`
	CreatedDate    string              `json:"created_date,omitempty"`
	ShipTo         string              `json:"ship_to"`
	Personalized   bool                `json:"personalized"`
	BoxSize        string              `json:"box_size"`
	CupSizes       []string            `json:"cup_sizes,omitempty"`
	ShippingMethod string              `json:"shipping_method,omitempty"`
	TrackingID     string              `json:"tracking_id,omitempty"`
	ZoneID         string              `json:"zone_id,omitempty"`
	ZoneName       string              `json:"zone_name"`
	Miles          *float64            `json:"miles,omitempty"`
	Printed        bool                `json:"printed"`
	ItemCount      int                 `json:"item_count"`
	Items          []OrderItemResponse `json:"items"`
}

// ListOrdersResponse represents the order list
type ListOrdersResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

func toOrderResponse(o *domain.ProcessedOrder, printed bool) OrderResponse {
	resp := OrderResponse{
		FulfillmentID:  o.FulfillmentID,
		DisplayNumber:  o.DisplayNumber,
		ShipTo:         o.ShipTo,
		Personalized:   o.Personalized,
		BoxSize:        o.BoxSize,
		CupSizes:       o.CupSizes,
		ShippingMethod: o.ShippingMethod,
		TrackingID:     o.TrackingID,
		ZoneID:         o.ZoneID,
		ZoneName:       o.ZoneDisplayName(),
		Miles:          o.Miles,
		Printed:        printed,
		ItemCount:      o.ItemCount(),
	}
	if !o.CreatedDate.IsZero() {
		resp.CreatedDate = o.CreatedDate.Format("2006-01-02")
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			SKU:          it.SKU,
			Description:  it.Description,
			ImageURL:     it.ImageURL,
			Quantity:     it.Quantity,
			Color:        it.Color,
			Size:         it.SizeCode,
			PickLocation: it.PickLocation,
			Barcode:      it.Barcode,
		})
	}
	return resp
}
