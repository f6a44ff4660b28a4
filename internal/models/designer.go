package models

import "time"

type Designer struct {
	ObjectID              string    `json:"objectId"              gorm:"type:varchar(36);primary_key"`
	DesignerID            int       `json:"designerId"            gorm:"unique_index;not null"`
	Name                  string    `json:"name"                  gorm:"index"`
	Abbreviation          string    `json:"abbreviation"          gorm:"type:varchar(16)"`
	ImageFile             string    `json:"image_file"`
	HasPendingVendorOrder bool      `json:"hasPendingVendorOrder" gorm:"index"`
	HasSentVendorOrder    bool      `json:"hasSentVendorOrder"    gorm:"index"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// DesignerVendor is one edge of the designer <-> vendor many-to-many relation.
type DesignerVendor struct {
	DesignerObjectID string `gorm:"type:varchar(36);primary_key"`
	VendorObjectID   string `gorm:"type:varchar(36);primary_key;index"`
}

const (
	SubpageAll     = "all"
	SubpagePending = "pending"
	SubpageSent    = "sent"

	SortNameAsc  = "name-asc"
	SortNameDesc = "name-desc"
)

type DesignerQuery struct {
	Offset     int
	Limit      int
	Desc       bool
	Subpage    string
	DesignerID *int
}
