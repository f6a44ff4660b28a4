package models

import "time"

// OrderProduct is a customer order line, i.e. demand for a Variant.
type OrderProduct struct {
	ObjectID        string    `json:"objectId"         gorm:"type:varchar(36);primary_key"`
	OrderProductID  int       `json:"orderProductId"   gorm:"index"`
	OrderID         int       `json:"orderId"          gorm:"index"`
	ProductID       int       `json:"productId"`
	VariantID       string    `json:"variantId"        gorm:"type:varchar(36)"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	QuantityShipped int       `json:"quantity_shipped"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Need is the number of units still owed to the customer.
func (p OrderProduct) Need() int {
	return p.Quantity - p.QuantityShipped
}

const (
	RefVendorOrders                  = "vendorOrders"
	RefAwaitingInventoryVendorOrders = "awaitingInventoryVendorOrders"
	RefAwaitingInventory             = "awaitingInventory"
)

// OrderProductRef is a back-reference from an OrderProduct to a VendorOrder
// (RefVendorOrders, RefAwaitingInventoryVendorOrders) or to a
// VendorOrderVariant (RefAwaitingInventory).
type OrderProductRef struct {
	OrderProductID string `gorm:"type:varchar(36);primary_key"`
	Kind           string `gorm:"type:varchar(40);primary_key"`
	RefID          string `gorm:"type:varchar(36);primary_key;index"`
}
