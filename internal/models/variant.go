package models

import "time"

// Variant is a sellable SKU mirrored from the commerce platform.
type Variant struct {
	ObjectID       string    `json:"objectId"       gorm:"type:varchar(36);primary_key"`
	VariantID      int       `json:"variantId"      gorm:"index"`
	ProductID      int       `json:"productId"      gorm:"index"`
	InventoryLevel int       `json:"inventoryLevel" gorm:"not null;default:0"`
	ProductName    string    `json:"productName"`
	Color          string    `json:"color"`
	Size           string    `json:"size"`
	Sku            string    `json:"sku"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
