package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"vendorflow/internal/models"
)

// Store keeps every record in maps keyed by object id and every relation as an
// explicit list of link records. All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	designers     map[string]models.Designer
	vendors       map[string]models.Vendor
	orders        map[string]models.VendorOrder
	orderVariants map[string]models.VendorOrderVariant
	variants      map[string]models.Variant
	orderProducts map[string]models.OrderProduct

	designerVendors []models.DesignerVendor
	activeOrders    []models.VendorActiveOrder
	demand          []models.VendorOrderVariantDemand
	refs            []models.OrderProductRef

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		designers:     make(map[string]models.Designer),
		vendors:       make(map[string]models.Vendor),
		orders:        make(map[string]models.VendorOrder),
		orderVariants: make(map[string]models.VendorOrderVariant),
		variants:      make(map[string]models.Variant),
		orderProducts: make(map[string]models.OrderProduct),
		now:           time.Now,
	}
}

func (s *Store) stamp(objectID *string, created, updated *time.Time) {
	if *objectID == "" {
		*objectID = models.NewObjectID()
	}
	now := s.now()
	if created.IsZero() {
		*created = now
	}
	*updated = now
}

// designers

func (s *Store) FindDesigner(_ context.Context, designerID int) (models.Designer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.designers {
		if d.DesignerID == designerID {
			return d, nil
		}
	}
	return models.Designer{}, models.ErrRecordNotFound
}

func (s *Store) ListDesigners(_ context.Context, q models.DesignerQuery) ([]models.Designer, int, error) {
	s.mu.RLock()
	matched := make([]models.Designer, 0, len(s.designers))
	for _, d := range s.designers {
		if q.DesignerID != nil && d.DesignerID != *q.DesignerID {
			continue
		}
		switch q.Subpage {
		case models.SubpagePending:
			if !d.HasPendingVendorOrder {
				continue
			}
		case models.SubpageSent:
			if !d.HasSentVendorOrder {
				continue
			}
		}
		matched = append(matched, d)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		a, b := strings.ToLower(matched[i].Name), strings.ToLower(matched[j].Name)
		if a == b {
			return matched[i].DesignerID < matched[j].DesignerID
		}
		if q.Desc {
			return a > b
		}
		return a < b
	})

	total := len(matched)
	if q.Offset >= total {
		return []models.Designer{}, total, nil
	}
	end := total
	if q.Limit > 0 && q.Offset+q.Limit < total {
		end = q.Offset + q.Limit
	}
	return matched[q.Offset:end], total, nil
}

func (s *Store) SaveDesigner(_ context.Context, d *models.Designer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&d.ObjectID, &d.CreatedAt, &d.UpdatedAt)
	s.designers[d.ObjectID] = *d
	return nil
}

func (s *Store) DesignersForVendor(_ context.Context, vendorID string) ([]models.Designer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Designer
	for _, l := range s.designerVendors {
		if l.VendorObjectID != vendorID {
			continue
		}
		if d, ok := s.designers[l.DesignerObjectID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// vendors

func (s *Store) GetVendor(_ context.Context, id string) (models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vendors[id]
	if !ok {
		return models.Vendor{}, models.ErrRecordNotFound
	}
	return v, nil
}

func (s *Store) SaveVendor(_ context.Context, v *models.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.vendors[v.ObjectID]; ok {
		v.VendorOrderCount = cur.VendorOrderCount
	}
	s.stamp(&v.ObjectID, &v.CreatedAt, &v.UpdatedAt)
	s.vendors[v.ObjectID] = *v
	return nil
}

func (s *Store) NextVendorOrderCount(_ context.Context, vendorID string) (models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[vendorID]
	if !ok {
		return models.Vendor{}, models.ErrRecordNotFound
	}
	v.VendorOrderCount++
	v.UpdatedAt = s.now()
	s.vendors[vendorID] = v
	return v, nil
}

func (s *Store) VendorsForDesigner(_ context.Context, designerObjectID string) ([]models.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Vendor
	for _, l := range s.designerVendors {
		if l.DesignerObjectID != designerObjectID {
			continue
		}
		if v, ok := s.vendors[l.VendorObjectID]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *Store) LinkDesignerVendor(_ context.Context, designerObjectID, vendorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.designers[designerObjectID]; !ok {
		return models.ErrRecordNotFound
	}
	if _, ok := s.vendors[vendorID]; !ok {
		return models.ErrRecordNotFound
	}
	for _, l := range s.designerVendors {
		if l.DesignerObjectID == designerObjectID && l.VendorObjectID == vendorID {
			return nil
		}
	}
	s.designerVendors = append(s.designerVendors, models.DesignerVendor{
		DesignerObjectID: designerObjectID,
		VendorObjectID:   vendorID,
	})
	return nil
}

func (s *Store) ActiveOrders(_ context.Context, vendorID string) ([]models.VendorOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.VendorOrder
	for _, l := range s.activeOrders {
		if l.VendorObjectID != vendorID {
			continue
		}
		if o, ok := s.orders[l.VendorOrderObjectID]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Store) AttachOrder(_ context.Context, vendorID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.activeOrders {
		if l.VendorObjectID == vendorID && l.VendorOrderObjectID == orderID {
			return nil
		}
	}
	s.activeOrders = append(s.activeOrders, models.VendorActiveOrder{
		VendorObjectID:      vendorID,
		VendorOrderObjectID: orderID,
	})
	return nil
}

func (s *Store) DetachOrder(_ context.Context, vendorID, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.activeOrders[:0]
	for _, l := range s.activeOrders {
		if l.VendorObjectID == vendorID && l.VendorOrderObjectID == orderID {
			continue
		}
		kept = append(kept, l)
	}
	s.activeOrders = kept
	return nil
}

// vendor orders

func (s *Store) GetVendorOrder(_ context.Context, id string) (models.VendorOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return models.VendorOrder{}, models.ErrRecordNotFound
	}
	return o, nil
}

// SaveVendorOrder rejects a number already held by another order, as the
// unique index does in postgres.
func (s *Store) SaveVendorOrder(_ context.Context, o *models.VendorOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.VendorOrderNumber != "" {
		for id, other := range s.orders {
			if id != o.ObjectID && other.VendorOrderNumber == o.VendorOrderNumber {
				return models.ErrConflict
			}
		}
	}
	s.stamp(&o.ObjectID, &o.CreatedAt, &o.UpdatedAt)
	s.orders[o.ObjectID] = *o
	return nil
}

func (s *Store) DestroyVendorOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return models.ErrRecordNotFound
	}
	delete(s.orders, id)
	kept := s.activeOrders[:0]
	for _, l := range s.activeOrders {
		if l.VendorOrderObjectID != id {
			kept = append(kept, l)
		}
	}
	s.activeOrders = kept
	return nil
}

func (s *Store) OrderVariants(_ context.Context, orderID string) ([]models.VendorOrderVariant, error) {
	s.mu.RLock()
	out := make([]models.VendorOrderVariant, 0)
	for _, v := range s.orderVariants {
		if v.VendorOrderID == orderID {
			out = append(out, v)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *Store) SaveOrderVariants(_ context.Context, vs []*models.VendorOrderVariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vs {
		s.stamp(&v.ObjectID, &v.CreatedAt, &v.UpdatedAt)
		s.orderVariants[v.ObjectID] = *v
	}
	return nil
}

func (s *Store) SaveReceipt(_ context.Context, v *models.VendorOrderVariant, previousReceived, inventoryDelta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.orderVariants[v.ObjectID]
	if !ok {
		return models.ErrRecordNotFound
	}
	if cur.Received != previousReceived {
		return models.ErrConflict
	}
	if inventoryDelta != 0 {
		variant, ok := s.variants[v.VariantID]
		if !ok {
			return models.ErrRecordNotFound
		}
		variant.InventoryLevel += inventoryDelta
		variant.UpdatedAt = s.now()
		s.variants[v.VariantID] = variant
	}
	s.stamp(&v.ObjectID, &v.CreatedAt, &v.UpdatedAt)
	s.orderVariants[v.ObjectID] = *v
	return nil
}

func (s *Store) DestroyOrderVariants(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := toSet(ids)
	for id := range drop {
		delete(s.orderVariants, id)
	}
	kept := s.demand[:0]
	for _, l := range s.demand {
		if _, ok := drop[l.VendorOrderVariantID]; !ok {
			kept = append(kept, l)
		}
	}
	s.demand = kept
	return nil
}

// inventory

func (s *Store) GetVariants(_ context.Context, ids []string) (map[string]models.Variant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.Variant, len(ids))
	for _, id := range ids {
		if v, ok := s.variants[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (s *Store) SaveVariant(_ context.Context, v *models.Variant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&v.ObjectID, &v.CreatedAt, &v.UpdatedAt)
	s.variants[v.ObjectID] = *v
	return nil
}

func (s *Store) AdjustInventory(_ context.Context, variantID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.variants[variantID]
	if !ok {
		return models.ErrRecordNotFound
	}
	v.InventoryLevel += delta
	v.UpdatedAt = s.now()
	s.variants[variantID] = v
	return nil
}

// order products

func (s *Store) SaveOrderProduct(_ context.Context, p *models.OrderProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamp(&p.ObjectID, &p.CreatedAt, &p.UpdatedAt)
	s.orderProducts[p.ObjectID] = *p
	return nil
}

func (s *Store) GetOrderProducts(_ context.Context, ids []string) (map[string]models.OrderProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]models.OrderProduct, len(ids))
	for _, id := range ids {
		if p, ok := s.orderProducts[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *Store) Demand(_ context.Context, orderVariantID string) ([]models.OrderProduct, error) {
	s.mu.RLock()
	links := make([]models.VendorOrderVariantDemand, 0)
	for _, l := range s.demand {
		if l.VendorOrderVariantID == orderVariantID {
			links = append(links, l)
		}
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].Position < links[j].Position })

	out := make([]models.OrderProduct, 0, len(links))
	for _, l := range links {
		if p, ok := s.orderProducts[l.OrderProductID]; ok {
			out = append(out, p)
		}
	}
	s.mu.RUnlock()
	return out, nil
}

func (s *Store) LinkDemand(_ context.Context, orderVariantID string, orderProductIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := 0
	existing := make(map[string]struct{})
	for _, l := range s.demand {
		if l.VendorOrderVariantID != orderVariantID {
			continue
		}
		existing[l.OrderProductID] = struct{}{}
		if l.Position >= next {
			next = l.Position + 1
		}
	}
	for _, id := range orderProductIDs {
		if _, ok := existing[id]; ok {
			continue
		}
		existing[id] = struct{}{}
		s.demand = append(s.demand, models.VendorOrderVariantDemand{
			VendorOrderVariantID: orderVariantID,
			OrderProductID:       id,
			Position:             next,
		})
		next++
	}
	return nil
}

func (s *Store) AddOrderProductRefs(_ context.Context, refs []models.OrderProductRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range refs {
		dup := false
		for _, cur := range s.refs {
			if cur == r {
				dup = true
				break
			}
		}
		if !dup {
			s.refs = append(s.refs, r)
		}
	}
	return nil
}

func (s *Store) OrderProductRefs(_ context.Context, orderProductID string) ([]models.OrderProductRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.OrderProductRef
	for _, r := range s.refs {
		if r.OrderProductID == orderProductID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) UnlinkVendorOrder(_ context.Context, orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropRefs(func(r models.OrderProductRef) bool {
		return r.RefID == orderID &&
			(r.Kind == models.RefVendorOrders || r.Kind == models.RefAwaitingInventoryVendorOrders)
	})
	return nil
}

func (s *Store) UnlinkOrderVariants(_ context.Context, variantIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := toSet(variantIDs)
	s.dropRefs(func(r models.OrderProductRef) bool {
		_, ok := drop[r.RefID]
		return ok && r.Kind == models.RefAwaitingInventory
	})
	return nil
}

func (s *Store) dropRefs(match func(models.OrderProductRef) bool) {
	kept := s.refs[:0]
	for _, r := range s.refs {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	s.refs = kept
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
