package models

// DesignerRecord is a designer with every vendor, active vendor order and
// order line nested, the shape returned by the mutating operations.
type DesignerRecord struct {
	Designer
	Vendors []VendorRecord `json:"vendors"`
}

type VendorRecord struct {
	Vendor
	VendorOrders []VendorOrderRecord `json:"vendorOrders"`
}

type VendorOrderRecord struct {
	VendorOrder
	VendorOrderVariants []VendorOrderVariantRecord `json:"vendorOrderVariants"`
}

type VendorOrderVariantRecord struct {
	VendorOrderVariant
	Variant       *Variant       `json:"variant,omitempty"`
	ResizeVariant *Variant       `json:"resizeVariant,omitempty"`
	OrderProducts []OrderProduct `json:"orderProducts"`
}

type DesignersPage struct {
	Designers  []DesignerRecord `json:"designers"`
	TotalPages int              `json:"totalPages"`
}

type SendVendorOrderResult struct {
	UpdatedDesigner DesignerRecord `json:"updatedDesigner"`
	SuccessMessage  string         `json:"successMessage"`
	Errors          []string       `json:"errors"`
}
