package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type GetDesignersRequest struct {
	Page    int    `json:"page"    validate:"gte=0"`
	Sort    string `json:"sort"    validate:"omitempty,oneof=name-asc name-desc"`
	Subpage string `json:"subpage" validate:"omitempty,oneof=all pending sent"`
	Search  string `json:"search"`
}

type CatalogDesigner struct {
	ID        int    `json:"id"         validate:"required,gt=0"`
	Name      string `json:"name"       validate:"required"`
	ImageFile string `json:"image_file"`
}

type LoadDesignerRequest struct {
	Designer CatalogDesigner `json:"designer" validate:"required"`
}

type LoadDesignerResult struct {
	Added bool `json:"added"`
}

// SaveVendorRequest carries optional vendor attributes. A nil field is left
// untouched, a pointer to "" clears the attribute.
type SaveVendorRequest struct {
	DesignerID int         `json:"designerId" validate:"required,gt=0"`
	VendorID   string      `json:"vendorId"`
	Name       *string     `json:"name"`
	FirstName  *string     `json:"firstName"`
	LastName   *string     `json:"lastName"`
	Email      *string     `json:"email"`
	WaitTime   OptionalInt `json:"waitTime"`
}

// OptionalInt accepts a number, a numeric string, "" or null. Set reports
// whether the field was present; Value is nil when it was cleared.
type OptionalInt struct {
	Set   bool
	Value *int
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	o.Set = true
	o.Value = nil

	raw := strings.TrimSpace(string(b))
	if raw == "null" || raw == `""` {
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		o.Value = &n
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected integer or string: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("expected integer, got %q", s)
	}
	o.Value = &n
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

type NewOrderVariant struct {
	VariantID       string   `json:"variantId"       validate:"required"`
	Units           int      `json:"units"           validate:"gt=0"`
	Notes           string   `json:"notes"`
	ResizeVariantID string   `json:"resizeVariantId"`
	OrderProductIDs []string `json:"orderProductIds"`
}

type CreateVendorOrderRequest struct {
	DesignerID int               `json:"designerId" validate:"required,gt=0"`
	VendorID   string            `json:"vendorId"   validate:"required"`
	Variants   []NewOrderVariant `json:"variants"   validate:"required,min=1,dive"`
	Message    string            `json:"message"`
}

type VariantChange struct {
	ObjectID string  `json:"objectId" validate:"required"`
	Units    *int    `json:"units"    validate:"omitempty,gte=0"`
	Notes    *string `json:"notes"`
	Received *int    `json:"received" validate:"omitempty,gte=0"`
}

type SaveVendorOrderRequest struct {
	DesignerID   int             `json:"designerId"   validate:"required,gt=0"`
	OrderID      string          `json:"orderId"      validate:"required"`
	VariantsData []VariantChange `json:"variantsData" validate:"dive"`
	Message      string          `json:"message"`
}

type SendVendorOrderRequest struct {
	DesignerID int    `json:"designerId" validate:"required,gt=0"`
	OrderID    string `json:"orderId"    validate:"required"`
	Message    string `json:"message"`
}
