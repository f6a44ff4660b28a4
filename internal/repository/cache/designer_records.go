package cache

import (
	"strconv"

	"vendorflow/internal/models"
)

// DesignerRecords caches assembled designer records by numeric designer id.
type DesignerRecords struct {
	kv KV[models.DesignerRecord]
}

func NewDesignerRecords(kv KV[models.DesignerRecord]) *DesignerRecords {
	return &DesignerRecords{kv: kv}
}

func (d *DesignerRecords) Get(designerID int) (models.DesignerRecord, bool) {
	return d.kv.Get(strconv.Itoa(designerID))
}

func (d *DesignerRecords) Put(rec models.DesignerRecord) {
	d.kv.Put(strconv.Itoa(rec.DesignerID), rec)
}

func (d *DesignerRecords) Invalidate(designerID int) {
	d.kv.Delete(strconv.Itoa(designerID))
}
