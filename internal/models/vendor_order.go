package models

import "time"

type VendorOrder struct {
	ObjectID          string     `json:"objectId"          gorm:"type:varchar(36);primary_key"`
	VendorID          string     `json:"vendorId"          gorm:"type:varchar(36);index"`
	VendorOrderNumber string     `json:"vendorOrderNumber" gorm:"type:varchar(32);unique_index"`
	Message           string     `json:"message"           gorm:"type:text"`
	EmailID           string     `json:"emailId"`
	DateOrdered       *time.Time `json:"dateOrdered"`
	DateReceived      *time.Time `json:"dateReceived"`
	OrderedAll        bool       `json:"orderedAll"`
	ReceivedAll       bool       `json:"receivedAll"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type VendorOrderVariant struct {
	ObjectID        string    `json:"objectId"        gorm:"type:varchar(36);primary_key"`
	VendorOrderID   string    `json:"vendorOrderId"   gorm:"type:varchar(36);index"`
	Position        int       `json:"position"`
	Units           int       `json:"units"`
	Received        int       `json:"received"`
	Notes           string    `json:"notes"           gorm:"type:text"`
	Ordered         bool      `json:"ordered"`
	Done            bool      `json:"done"`
	IsResize        bool      `json:"isResize"`
	VariantID       string    `json:"variantId"       gorm:"type:varchar(36);index"`
	ResizeVariantID string    `json:"resizeVariantId" gorm:"type:varchar(36)"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// VendorOrderVariantDemand attaches a customer order line to a vendor order variant.
// Position keeps the demand list in the order it was attached.
type VendorOrderVariantDemand struct {
	VendorOrderVariantID string `gorm:"type:varchar(36);primary_key"`
	OrderProductID       string `gorm:"type:varchar(36);primary_key;index"`
	Position             int
}
