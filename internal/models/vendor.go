package models

import "time"

type Vendor struct {
	ObjectID         string    `json:"objectId"         gorm:"type:varchar(36);primary_key"`
	Name             string    `json:"name"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	WaitTime         *int      `json:"waitTime"`
	Abbreviation     string    `json:"abbreviation"     gorm:"type:varchar(16)"`
	VendorOrderCount int       `json:"vendorOrderCount" gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// VendorActiveOrder marks a vendor order that has not been fully received yet.
type VendorActiveOrder struct {
	VendorObjectID      string `gorm:"type:varchar(36);primary_key"`
	VendorOrderObjectID string `gorm:"type:varchar(36);primary_key;index"`
}
