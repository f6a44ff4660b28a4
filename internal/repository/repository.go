package repository

import (
	"context"

	"github.com/jinzhu/gorm"

	"vendorflow/internal/models"
	"vendorflow/internal/repository/cache"
	"vendorflow/internal/repository/memory"
	"vendorflow/internal/repository/postgres"
)

// Every lookup that misses returns models.ErrRecordNotFound. Save methods
// assign an object id to records that don't have one yet.

type Designers interface {
	FindDesigner(ctx context.Context, designerID int) (models.Designer, error)
	ListDesigners(ctx context.Context, q models.DesignerQuery) ([]models.Designer, int, error)
	SaveDesigner(ctx context.Context, d *models.Designer) error
	DesignersForVendor(ctx context.Context, vendorID string) ([]models.Designer, error)
}

type Vendors interface {
	GetVendor(ctx context.Context, id string) (models.Vendor, error)
	// SaveVendor never writes VendorOrderCount of an existing vendor; the
	// counter only moves through NextVendorOrderCount.
	SaveVendor(ctx context.Context, v *models.Vendor) error
	// NextVendorOrderCount atomically increments the vendor's order counter
	// and returns the vendor as stored after the increment.
	NextVendorOrderCount(ctx context.Context, vendorID string) (models.Vendor, error)
	VendorsForDesigner(ctx context.Context, designerObjectID string) ([]models.Vendor, error)
	LinkDesignerVendor(ctx context.Context, designerObjectID, vendorID string) error
	ActiveOrders(ctx context.Context, vendorID string) ([]models.VendorOrder, error)
	AttachOrder(ctx context.Context, vendorID, orderID string) error
	DetachOrder(ctx context.Context, vendorID, orderID string) error
}

type VendorOrders interface {
	GetVendorOrder(ctx context.Context, id string) (models.VendorOrder, error)
	SaveVendorOrder(ctx context.Context, o *models.VendorOrder) error
	DestroyVendorOrder(ctx context.Context, id string) error
	OrderVariants(ctx context.Context, orderID string) ([]models.VendorOrderVariant, error)
	SaveOrderVariants(ctx context.Context, vs []*models.VendorOrderVariant) error
	// SaveReceipt persists an edit of an existing order variant and the
	// matching inventory increment of its Variant as one unit. The write only
	// applies while the stored received count still equals previousReceived,
	// otherwise nothing changes and models.ErrConflict is returned.
	SaveReceipt(ctx context.Context, v *models.VendorOrderVariant, previousReceived, inventoryDelta int) error
	// DestroyOrderVariants also drops the variants' demand links.
	DestroyOrderVariants(ctx context.Context, ids []string) error
}

type Inventory interface {
	GetVariants(ctx context.Context, ids []string) (map[string]models.Variant, error)
	SaveVariant(ctx context.Context, v *models.Variant) error
	AdjustInventory(ctx context.Context, variantID string, delta int) error
}

type OrderProducts interface {
	SaveOrderProduct(ctx context.Context, p *models.OrderProduct) error
	GetOrderProducts(ctx context.Context, ids []string) (map[string]models.OrderProduct, error)
	// Demand returns the order lines attached to a vendor order variant, in attach order.
	Demand(ctx context.Context, orderVariantID string) ([]models.OrderProduct, error)
	LinkDemand(ctx context.Context, orderVariantID string, orderProductIDs []string) error
	AddOrderProductRefs(ctx context.Context, refs []models.OrderProductRef) error
	OrderProductRefs(ctx context.Context, orderProductID string) ([]models.OrderProductRef, error)
	// UnlinkVendorOrder removes the vendorOrders and awaitingInventoryVendorOrders
	// references to the order.
	UnlinkVendorOrder(ctx context.Context, orderID string) error
	// UnlinkOrderVariants removes the awaitingInventory references to the variants.
	UnlinkOrderVariants(ctx context.Context, variantIDs []string) error
}

type DesignerCache interface {
	Get(designerID int) (models.DesignerRecord, bool)
	Put(rec models.DesignerRecord)
	Invalidate(designerID int)
}

type Repository struct {
	Designers
	Vendors
	VendorOrders
	Inventory
	OrderProducts
	DesignerCache
}

func NewRepository(db *gorm.DB, opts ...cache.Option) *Repository {
	return &Repository{
		Designers:     postgres.NewDesignerPostgres(db),
		Vendors:       postgres.NewVendorPostgres(db),
		VendorOrders:  postgres.NewVendorOrderPostgres(db),
		Inventory:     postgres.NewInventoryPostgres(db),
		OrderProducts: postgres.NewOrderProductPostgres(db),
		DesignerCache: cache.NewDesignerRecords(cache.New[models.DesignerRecord](opts...)),
	}
}

// NewMemoryRepository backs every store with a single in-process arena.
func NewMemoryRepository(opts ...cache.Option) *Repository {
	st := memory.NewStore()
	return &Repository{
		Designers:     st,
		Vendors:       st,
		VendorOrders:  st,
		Inventory:     st,
		OrderProducts: st,
		DesignerCache: cache.NewDesignerRecords(cache.New[models.DesignerRecord](opts...)),
	}
}
