package postgres

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"vendorflow/internal/models"
)

type VendorOrderPostgres struct {
	db *gorm.DB
}

func NewVendorOrderPostgres(db *gorm.DB) *VendorOrderPostgres {
	return &VendorOrderPostgres{db: db}
}

func (r *VendorOrderPostgres) GetVendorOrder(_ context.Context, id string) (models.VendorOrder, error) {
	var o models.VendorOrder
	if err := r.db.Where("object_id = ?", id).First(&o).Error; err != nil {
		return models.VendorOrder{}, errors.Wrapf(notFound(err), "vendor order %s", id)
	}
	return o, nil
}

func (r *VendorOrderPostgres) SaveVendorOrder(_ context.Context, o *models.VendorOrder) error {
	ensureID(&o.ObjectID)
	return errors.Wrapf(r.db.Save(o).Error, "save vendor order %s", o.ObjectID)
}

func (r *VendorOrderPostgres) DestroyVendorOrder(_ context.Context, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_order_object_id = ?", id).Delete(models.VendorActiveOrder{}).Error; err != nil {
			return errors.Wrapf(err, "drop active links of order %s", id)
		}
		res := tx.Where("object_id = ?", id).Delete(models.VendorOrder{})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "destroy vendor order %s", id)
		}
		if res.RowsAffected == 0 {
			return errors.Wrapf(models.ErrRecordNotFound, "vendor order %s", id)
		}
		return nil
	})
}

func (r *VendorOrderPostgres) OrderVariants(_ context.Context, orderID string) ([]models.VendorOrderVariant, error) {
	out := []models.VendorOrderVariant{}
	err := r.db.Where("vendor_order_id = ?", orderID).Order("position asc").Find(&out).Error
	return out, errors.Wrapf(err, "variants of order %s", orderID)
}

func (r *VendorOrderPostgres) SaveOrderVariants(_ context.Context, vs []*models.VendorOrderVariant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, v := range vs {
			ensureID(&v.ObjectID)
			if err := tx.Save(v).Error; err != nil {
				return errors.Wrapf(err, "save order variant %s", v.ObjectID)
			}
		}
		return nil
	})
}

func (r *VendorOrderPostgres) SaveReceipt(_ context.Context, v *models.VendorOrderVariant, previousReceived, inventoryDelta int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.VendorOrderVariant{}).
			Where("object_id = ? AND received = ?", v.ObjectID, previousReceived).
			Updates(map[string]interface{}{
				"units":    v.Units,
				"received": v.Received,
				"notes":    v.Notes,
				"done":     v.Done,
			})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "save receipt for order variant %s", v.ObjectID)
		}
		if res.RowsAffected == 0 {
			var n int
			if err := tx.Model(&models.VendorOrderVariant{}).Where("object_id = ?", v.ObjectID).Count(&n).Error; err != nil {
				return errors.Wrapf(err, "check order variant %s", v.ObjectID)
			}
			if n == 0 {
				return errors.Wrapf(models.ErrRecordNotFound, "order variant %s", v.ObjectID)
			}
			return errors.Wrapf(models.ErrConflict, "order variant %s received %d", v.ObjectID, previousReceived)
		}
		if inventoryDelta != 0 {
			return adjustInventory(tx, v.VariantID, inventoryDelta)
		}
		return nil
	})
}

func (r *VendorOrderPostgres) DestroyOrderVariants(_ context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vendor_order_variant_id IN (?)", ids).Delete(models.VendorOrderVariantDemand{}).Error; err != nil {
			return errors.Wrap(err, "drop demand links")
		}
		return errors.Wrap(tx.Where("object_id IN (?)", ids).Delete(models.VendorOrderVariant{}).Error, "destroy order variants")
	})
}
