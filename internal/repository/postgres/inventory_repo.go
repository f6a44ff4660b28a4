package postgres

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"vendorflow/internal/models"
)

type InventoryPostgres struct {
	db *gorm.DB
}

func NewInventoryPostgres(db *gorm.DB) *InventoryPostgres {
	return &InventoryPostgres{db: db}
}

func (r *InventoryPostgres) GetVariants(_ context.Context, ids []string) (map[string]models.Variant, error) {
	out := make(map[string]models.Variant, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.Variant
	if err := r.db.Where("object_id IN (?)", ids).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load variants")
	}
	for _, v := range rows {
		out[v.ObjectID] = v
	}
	return out, nil
}

func (r *InventoryPostgres) SaveVariant(_ context.Context, v *models.Variant) error {
	ensureID(&v.ObjectID)
	return errors.Wrapf(r.db.Save(v).Error, "save variant %s", v.ObjectID)
}

func (r *InventoryPostgres) AdjustInventory(_ context.Context, variantID string, delta int) error {
	return adjustInventory(r.db, variantID, delta)
}

// adjustInventory increments in SQL so concurrent adjustments never lose updates.
func adjustInventory(db *gorm.DB, variantID string, delta int) error {
	res := db.Model(&models.Variant{}).
		Where("object_id = ?", variantID).
		UpdateColumn("inventory_level", gorm.Expr("inventory_level + ?", delta))
	if res.Error != nil {
		return errors.Wrapf(res.Error, "adjust inventory of variant %s", variantID)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(models.ErrRecordNotFound, "variant %s", variantID)
	}
	return nil
}
