package service

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"vendorflow/internal/models"
)

func (s *Service) findDesigner(ctx context.Context, designerID int) (models.Designer, error) {
	d, err := s.repo.FindDesigner(ctx, designerID)
	if err != nil {
		return models.Designer{}, storeErr(fmt.Sprintf("designer %d", designerID), err)
	}
	return d, nil
}

// GetDesigner serves the nested record from cache. Concurrent misses for the
// same designer share one load, which runs detached from any single caller.
func (s *Service) GetDesigner(ctx context.Context, designerID int) (models.DesignerRecord, error) {
	if rec, ok := s.repo.DesignerCache.Get(designerID); ok {
		return rec, nil
	}
	v, err, _ := s.loads.Do(strconv.Itoa(designerID), func() (any, error) {
		lctx := context.WithoutCancel(ctx)
		gen := s.generation(designerID)
		d, err := s.findDesigner(lctx, designerID)
		if err != nil {
			return nil, err
		}
		rec, err := s.designerRecord(lctx, d)
		if err != nil {
			return nil, err
		}
		s.putIfCurrent(rec, gen)
		return rec, nil
	})
	if err != nil {
		return models.DesignerRecord{}, err
	}
	return v.(models.DesignerRecord), nil
}

// freshRecord reloads a designer after a mutation and replaces the cached copy.
func (s *Service) freshRecord(ctx context.Context, designerID int) (models.DesignerRecord, error) {
	s.invalidate(designerID)
	gen := s.generation(designerID)
	d, err := s.findDesigner(ctx, designerID)
	if err != nil {
		return models.DesignerRecord{}, err
	}
	rec, err := s.designerRecord(ctx, d)
	if err != nil {
		return models.DesignerRecord{}, err
	}
	s.putIfCurrent(rec, gen)
	return rec, nil
}

// invalidate drops the cached record and fences off loads already running,
// so none of them can cache what it read before the mutation.
func (s *Service) invalidate(designerID int) {
	s.gensMu.Lock()
	s.gens[designerID]++
	s.repo.DesignerCache.Invalidate(designerID)
	s.gensMu.Unlock()
	s.loads.Forget(strconv.Itoa(designerID))
}

func (s *Service) generation(designerID int) uint64 {
	s.gensMu.Lock()
	defer s.gensMu.Unlock()
	return s.gens[designerID]
}

func (s *Service) putIfCurrent(rec models.DesignerRecord, gen uint64) bool {
	s.gensMu.Lock()
	defer s.gensMu.Unlock()
	if s.gens[rec.DesignerID] != gen {
		return false
	}
	s.repo.DesignerCache.Put(rec)
	return true
}

func (s *Service) designerRecord(ctx context.Context, d models.Designer) (models.DesignerRecord, error) {
	vendors, err := s.repo.VendorsForDesigner(ctx, d.ObjectID)
	if err != nil {
		return models.DesignerRecord{}, storeErr("vendors for designer", err)
	}

	rec := models.DesignerRecord{Designer: d, Vendors: make([]models.VendorRecord, len(vendors))}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FanoutLimit)
	for i, v := range vendors {
		g.Go(func() error {
			vr, err := s.vendorRecord(gctx, v)
			if err != nil {
				return err
			}
			rec.Vendors[i] = vr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.DesignerRecord{}, err
	}
	return rec, nil
}

func (s *Service) vendorRecord(ctx context.Context, v models.Vendor) (models.VendorRecord, error) {
	orders, err := s.repo.ActiveOrders(ctx, v.ObjectID)
	if err != nil {
		return models.VendorRecord{}, storeErr("active orders", err)
	}
	rec := models.VendorRecord{Vendor: v, VendorOrders: make([]models.VendorOrderRecord, 0, len(orders))}
	for _, o := range orders {
		or, err := s.orderRecord(ctx, o)
		if err != nil {
			return models.VendorRecord{}, err
		}
		rec.VendorOrders = append(rec.VendorOrders, or)
	}
	return rec, nil
}

func (s *Service) orderRecord(ctx context.Context, o models.VendorOrder) (models.VendorOrderRecord, error) {
	variants, err := s.repo.OrderVariants(ctx, o.ObjectID)
	if err != nil {
		return models.VendorOrderRecord{}, storeErr("order variants", err)
	}
	skus, err := s.repo.GetVariants(ctx, variantRefs(variants))
	if err != nil {
		return models.VendorOrderRecord{}, storeErr("variants", err)
	}

	rec := models.VendorOrderRecord{VendorOrder: o, VendorOrderVariants: make([]models.VendorOrderVariantRecord, 0, len(variants))}
	for _, vov := range variants {
		demand, err := s.repo.Demand(ctx, vov.ObjectID)
		if err != nil {
			return models.VendorOrderRecord{}, storeErr("demand", err)
		}
		vr := models.VendorOrderVariantRecord{VendorOrderVariant: vov, OrderProducts: demand}
		if sku, ok := skus[vov.VariantID]; ok {
			vr.Variant = &sku
		}
		if sku, ok := skus[vov.ResizeVariantID]; ok && vov.ResizeVariantID != "" {
			vr.ResizeVariant = &sku
		}
		rec.VendorOrderVariants = append(rec.VendorOrderVariants, vr)
	}
	return rec, nil
}

// variantRefs lists the Variant ids referenced by order variants, resize sources included.
func variantRefs(variants []models.VendorOrderVariant) []string {
	seen := make(map[string]struct{}, len(variants))
	ids := make([]string, 0, len(variants))
	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, v := range variants {
		add(v.VariantID)
		add(v.ResizeVariantID)
	}
	return ids
}
