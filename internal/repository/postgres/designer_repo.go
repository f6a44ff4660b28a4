package postgres

import (
	"context"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"vendorflow/internal/models"
)

type DesignerPostgres struct {
	db *gorm.DB
}

func NewDesignerPostgres(db *gorm.DB) *DesignerPostgres {
	return &DesignerPostgres{db: db}
}

func (r *DesignerPostgres) FindDesigner(_ context.Context, designerID int) (models.Designer, error) {
	var d models.Designer
	err := r.db.Where("designer_id = ?", designerID).First(&d).Error
	if err != nil {
		return models.Designer{}, errors.Wrapf(notFound(err), "designer %d", designerID)
	}
	return d, nil
}

func (r *DesignerPostgres) ListDesigners(_ context.Context, q models.DesignerQuery) ([]models.Designer, int, error) {
	scope := r.db.Model(&models.Designer{})
	if q.DesignerID != nil {
		scope = scope.Where("designer_id = ?", *q.DesignerID)
	}
	switch q.Subpage {
	case models.SubpagePending:
		scope = scope.Where("has_pending_vendor_order = ?", true)
	case models.SubpageSent:
		scope = scope.Where("has_sent_vendor_order = ?", true)
	}

	var total int
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count designers")
	}

	order := "lower(name) asc, designer_id asc"
	if q.Desc {
		order = "lower(name) desc, designer_id asc"
	}
	scope = scope.Order(order).Offset(q.Offset)
	if q.Limit > 0 {
		scope = scope.Limit(q.Limit)
	}

	out := []models.Designer{}
	if err := scope.Find(&out).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list designers")
	}
	return out, total, nil
}

func (r *DesignerPostgres) SaveDesigner(_ context.Context, d *models.Designer) error {
	ensureID(&d.ObjectID)
	return errors.Wrapf(r.db.Save(d).Error, "save designer %d", d.DesignerID)
}

func (r *DesignerPostgres) DesignersForVendor(_ context.Context, vendorID string) ([]models.Designer, error) {
	var out []models.Designer
	err := r.db.
		Joins("JOIN designer_vendors dv ON dv.designer_object_id = designers.object_id").
		Where("dv.vendor_object_id = ?", vendorID).
		Find(&out).Error
	return out, errors.Wrapf(err, "designers for vendor %s", vendorID)
}
