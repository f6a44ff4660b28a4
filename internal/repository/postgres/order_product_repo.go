package postgres

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"vendorflow/internal/models"
)

type OrderProductPostgres struct {
	db *gorm.DB
}

func NewOrderProductPostgres(db *gorm.DB) *OrderProductPostgres {
	return &OrderProductPostgres{db: db}
}

func (r *OrderProductPostgres) SaveOrderProduct(_ context.Context, p *models.OrderProduct) error {
	ensureID(&p.ObjectID)
	return errors.Wrapf(r.db.Save(p).Error, "save order product %s", p.ObjectID)
}

func (r *OrderProductPostgres) GetOrderProducts(_ context.Context, ids []string) (map[string]models.OrderProduct, error) {
	out := make(map[string]models.OrderProduct, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.OrderProduct
	if err := r.db.Where("object_id IN (?)", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load order products")
	}
	for _, p := range rows {
		out[p.ObjectID] = p
	}
	return out, nil
}

func (r *OrderProductPostgres) Demand(_ context.Context, orderVariantID string) ([]models.OrderProduct, error) {
	out := []models.OrderProduct{}
	err := r.db.
		Joins("JOIN vendor_order_variant_demands d ON d.order_product_id = order_products.object_id").
		Where("d.vendor_order_variant_id = ?", orderVariantID).
		Order("d.position asc").
		Find(&out).Error
	return out, errors.Wrapf(err, "demand of order variant %s", orderVariantID)
}

func (r *OrderProductPostgres) LinkDemand(_ context.Context, orderVariantID string, orderProductIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.VendorOrderVariantDemand
		if err := tx.Where("vendor_order_variant_id = ?", orderVariantID).Find(&existing).Error; err != nil {
			return errors.Wrap(err, "load demand links")
		}
		next := 0
		seen := make(map[string]struct{}, len(existing))
		for _, l := range existing {
			seen[l.OrderProductID] = struct{}{}
			if l.Position >= next {
				next = l.Position + 1
			}
		}
		for _, id := range orderProductIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			link := models.VendorOrderVariantDemand{VendorOrderVariantID: orderVariantID, OrderProductID: id, Position: next}
			if err := tx.Create(&link).Error; err != nil {
				return errors.Wrapf(err, "link order product %s", id)
			}
			next++
		}
		return nil
	})
}

func (r *OrderProductPostgres) AddOrderProductRefs(_ context.Context, refs []models.OrderProductRef) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range refs {
			ref := refs[i]
			if err := tx.Where(ref).FirstOrCreate(&ref).Error; err != nil {
				return errors.Wrapf(err, "add %s ref of order product %s", ref.Kind, ref.OrderProductID)
			}
		}
		return nil
	})
}

func (r *OrderProductPostgres) OrderProductRefs(_ context.Context, orderProductID string) ([]models.OrderProductRef, error) {
	var out []models.OrderProductRef
	err := r.db.Where("order_product_id = ?", orderProductID).Order("kind asc, ref_id asc").Find(&out).Error
	return out, errors.Wrapf(err, "refs of order product %s", orderProductID)
}

func (r *OrderProductPostgres) UnlinkVendorOrder(_ context.Context, orderID string) error {
	err := r.db.
		Where("ref_id = ? AND kind IN (?)", orderID,
			[]string{models.RefVendorOrders, models.RefAwaitingInventoryVendorOrders}).
		Delete(models.OrderProductRef{}).Error
	return errors.Wrapf(err, "unlink vendor order %s", orderID)
}

func (r *OrderProductPostgres) UnlinkOrderVariants(_ context.Context, variantIDs []string) error {
	if len(variantIDs) == 0 {
		return nil
	}
	err := r.db.
		Where("ref_id IN (?) AND kind = ?", variantIDs, models.RefAwaitingInventory).
		Delete(models.OrderProductRef{}).Error
	return errors.Wrap(err, "unlink order variants")
}
