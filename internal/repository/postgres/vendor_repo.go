package postgres

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"vendorflow/internal/models"
)

type VendorPostgres struct {
	db *gorm.DB
}

func NewVendorPostgres(db *gorm.DB) *VendorPostgres {
	return &VendorPostgres{db: db}
}

func (r *VendorPostgres) GetVendor(_ context.Context, id string) (models.Vendor, error) {
	var v models.Vendor
	if err := r.db.Where("object_id = ?", id).First(&v).Error; err != nil {
		return models.Vendor{}, errors.Wrapf(notFound(err), "vendor %s", id)
	}
	return v, nil
}

func (r *VendorPostgres) SaveVendor(_ context.Context, v *models.Vendor) error {
	ensureID(&v.ObjectID)
	return errors.Wrapf(r.db.Omit("vendor_order_count").Save(v).Error, "save vendor %s", v.ObjectID)
}

// NextVendorOrderCount bumps the counter in SQL; the row lock taken by the
// update serialises concurrent callers until the read-back commits.
func (r *VendorPostgres) NextVendorOrderCount(_ context.Context, vendorID string) (models.Vendor, error) {
	var v models.Vendor
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Vendor{}).
			Where("object_id = ?", vendorID).
			UpdateColumn("vendor_order_count", gorm.Expr("vendor_order_count + 1"))
		if res.Error != nil {
			return errors.Wrapf(res.Error, "bump order count of vendor %s", vendorID)
		}
		if res.RowsAffected == 0 {
			return errors.Wrapf(models.ErrRecordNotFound, "vendor %s", vendorID)
		}
		return errors.Wrapf(tx.Where("object_id = ?", vendorID).First(&v).Error, "reload vendor %s", vendorID)
	})
	if err != nil {
		return models.Vendor{}, err
	}
	return v, nil
}

func (r *VendorPostgres) VendorsForDesigner(_ context.Context, designerObjectID string) ([]models.Vendor, error) {
	var out []models.Vendor
	err := r.db.
		Joins("JOIN designer_vendors dv ON dv.vendor_object_id = vendors.object_id").
		Where("dv.designer_object_id = ?", designerObjectID).
		Order("vendors.created_at asc").
		Find(&out).Error
	return out, errors.Wrapf(err, "vendors for designer %s", designerObjectID)
}

func (r *VendorPostgres) LinkDesignerVendor(_ context.Context, designerObjectID, vendorID string) error {
	link := models.DesignerVendor{DesignerObjectID: designerObjectID, VendorObjectID: vendorID}
	err := r.db.Where(link).FirstOrCreate(&link).Error
	return errors.Wrapf(err, "link designer %s to vendor %s", designerObjectID, vendorID)
}

func (r *VendorPostgres) ActiveOrders(_ context.Context, vendorID string) ([]models.VendorOrder, error) {
	var out []models.VendorOrder
	err := r.db.
		Joins("JOIN vendor_active_orders vao ON vao.vendor_order_object_id = vendor_orders.object_id").
		Where("vao.vendor_object_id = ?", vendorID).
		Order("vendor_orders.created_at asc").
		Find(&out).Error
	return out, errors.Wrapf(err, "active orders for vendor %s", vendorID)
}

func (r *VendorPostgres) AttachOrder(_ context.Context, vendorID, orderID string) error {
	link := models.VendorActiveOrder{VendorObjectID: vendorID, VendorOrderObjectID: orderID}
	err := r.db.Where(link).FirstOrCreate(&link).Error
	return errors.Wrapf(err, "attach order %s to vendor %s", orderID, vendorID)
}

func (r *VendorPostgres) DetachOrder(_ context.Context, vendorID, orderID string) error {
	err := r.db.
		Where("vendor_object_id = ? AND vendor_order_object_id = ?", vendorID, orderID).
		Delete(models.VendorActiveOrder{}).Error
	return errors.Wrapf(err, "detach order %s from vendor %s", orderID, vendorID)
}
