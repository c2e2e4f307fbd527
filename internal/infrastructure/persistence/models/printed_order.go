package models

import "time"

// PrintedOrderModel records that an order's packing slip already went to
// the printer, so the next refresh can drop it from the work queue.
type PrintedOrderModel struct {
	OrderID   string    `gorm:"primaryKey;size:64"`
	PrintedAt time.Time `gorm:"not null"`
}

// TableName returns the table name
func (PrintedOrderModel) TableName() string {
	return "printed_orders"
}
