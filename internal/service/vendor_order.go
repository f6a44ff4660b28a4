package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"vendorflow/internal/metrics"
	"vendorflow/internal/models"
)

// CreateVendorOrder opens a new order with a vendor of the designer and links
// the customer order lines each variant is meant to cover.
func (s *Service) CreateVendorOrder(ctx context.Context, req models.CreateVendorOrderRequest) (rec models.DesignerRecord, err error) {
	track := metrics.TrackFunction("createVendorOrder")
	defer func() { track(err) }()

	if err := s.validate(req); err != nil {
		return models.DesignerRecord{}, err
	}
	d, err := s.findDesigner(ctx, req.DesignerID)
	if err != nil {
		return models.DesignerRecord{}, err
	}
	v, err := s.repo.GetVendor(ctx, req.VendorID)
	if err != nil {
		return models.DesignerRecord{}, storeErr("vendor "+req.VendorID, err)
	}
	if ok, err := s.ownsVendor(ctx, d, v.ObjectID); err != nil {
		return models.DesignerRecord{}, err
	} else if !ok {
		return models.DesignerRecord{}, fmt.Errorf("%w: vendor %s does not belong to designer %d", ErrValidation, v.ObjectID, d.DesignerID)
	}

	ids := make([]string, 0, len(req.Variants))
	for _, nv := range req.Variants {
		ids = append(ids, nv.VariantID)
		if nv.ResizeVariantID != "" {
			ids = append(ids, nv.ResizeVariantID)
		}
	}
	skus, err := s.repo.GetVariants(ctx, ids)
	if err != nil {
		return models.DesignerRecord{}, storeErr("variants", err)
	}

	var lines []models.NewOrderVariant
	for _, nv := range req.Variants {
		if _, ok := skus[nv.VariantID]; !ok {
			logrus.WithField("variant", nv.VariantID).Warn("variant not found, skipped")
			continue
		}
		if nv.ResizeVariantID != "" {
			if _, ok := skus[nv.ResizeVariantID]; !ok {
				logrus.WithField("variant", nv.ResizeVariantID).Warn("resize variant not found, skipped")
				continue
			}
		}
		lines = append(lines, nv)
	}
	if len(lines) == 0 {
		return models.DesignerRecord{}, fmt.Errorf("%w: none of the variants exist", ErrValidation)
	}

	o := models.VendorOrder{VendorID: v.ObjectID, Message: req.Message}
	if err := s.putVendorOrder(ctx, &o); err != nil {
		return models.DesignerRecord{}, err
	}

	variants := make([]*models.VendorOrderVariant, len(lines))
	for i, nv := range lines {
		variants[i] = &models.VendorOrderVariant{
			VendorOrderID:   o.ObjectID,
			Position:        i,
			Units:           nv.Units,
			Notes:           nv.Notes,
			VariantID:       nv.VariantID,
			ResizeVariantID: nv.ResizeVariantID,
			IsResize:        nv.ResizeVariantID != "",
		}
	}
	if err := s.repo.SaveOrderVariants(ctx, variants); err != nil {
		return models.DesignerRecord{}, storeErr("save order variants", err)
	}

	for i, nv := range lines {
		if err := s.linkDemand(ctx, o.ObjectID, variants[i].ObjectID, nv.OrderProductIDs); err != nil {
			return models.DesignerRecord{}, err
		}
	}

	if err := s.repo.AttachOrder(ctx, v.ObjectID, o.ObjectID); err != nil {
		return models.DesignerRecord{}, storeErr("attach order", err)
	}
	if err := s.touchVendor(ctx, v.ObjectID); err != nil {
		return models.DesignerRecord{}, err
	}

	metrics.RecordTransition("created")
	logrus.WithFields(logrus.Fields{"order": o.VendorOrderNumber, "vendor": v.ObjectID, "variants": len(variants)}).Info("vendor order created")
	return s.freshRecord(ctx, d.DesignerID)
}

func (s *Service) ownsVendor(ctx context.Context, d models.Designer, vendorID string) (bool, error) {
	vendors, err := s.repo.VendorsForDesigner(ctx, d.ObjectID)
	if err != nil {
		return false, storeErr("vendors for designer", err)
	}
	for _, v := range vendors {
		if v.ObjectID == vendorID {
			return true, nil
		}
	}
	return false, nil
}

// linkDemand attaches existing order lines to an order variant and records
// the back-references on each line. Unknown lines are skipped.
func (s *Service) linkDemand(ctx context.Context, orderID, variantID string, orderProductIDs []string) error {
	if len(orderProductIDs) == 0 {
		return nil
	}
	found, err := s.repo.GetOrderProducts(ctx, orderProductIDs)
	if err != nil {
		return storeErr("order products", err)
	}

	ids := make([]string, 0, len(found))
	refs := make([]models.OrderProductRef, 0, 2*len(found))
	for _, id := range orderProductIDs {
		if _, ok := found[id]; !ok {
			logrus.WithFields(logrus.Fields{"product": id, "variant": variantID}).Warn("order product not found, skipped")
			continue
		}
		ids = append(ids, id)
		refs = append(refs,
			models.OrderProductRef{OrderProductID: id, Kind: models.RefVendorOrders, RefID: orderID},
			models.OrderProductRef{OrderProductID: id, Kind: models.RefAwaitingInventory, RefID: variantID},
		)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.LinkDemand(ctx, variantID, ids); err != nil {
		return storeErr("link demand", err)
	}
	if err := s.repo.AddOrderProductRefs(ctx, refs); err != nil {
		return storeErr("order product refs", err)
	}
	return nil
}

// SaveVendorOrder applies edits and receipts to an order's variants in the
// submitted order, then either deletes the order (no units left), marks it
// received, or just saves it. Lookup misses skip the item.
func (s *Service) SaveVendorOrder(ctx context.Context, req models.SaveVendorOrderRequest) (rec models.DesignerRecord, err error) {
	track := metrics.TrackFunction("saveVendorOrder")
	defer func() { track(err) }()

	if err := s.validate(req); err != nil {
		return models.DesignerRecord{}, err
	}
	d, err := s.findDesigner(ctx, req.DesignerID)
	if err != nil {
		return models.DesignerRecord{}, err
	}

	o, err := s.repo.GetVendorOrder(ctx, req.OrderID)
	if isMiss(err) {
		logrus.WithField("order", req.OrderID).Warn("vendor order not found, nothing saved")
		s.refreshInventory(ctx, "saveVendorOrder", nil)
		return s.freshRecord(ctx, d.DesignerID)
	}
	if err != nil {
		return models.DesignerRecord{}, storeErr("load vendor order", err)
	}

	variants, err := s.repo.OrderVariants(ctx, o.ObjectID)
	if err != nil {
		return models.DesignerRecord{}, storeErr("order variants", err)
	}
	skus, err := s.repo.GetVariants(ctx, variantRefs(variants))
	if err != nil {
		return models.DesignerRecord{}, storeErr("variants", err)
	}

	index := make(map[string]int, len(variants))
	for i, v := range variants {
		index[v.ObjectID] = i
	}

	var products productSet
	for _, ch := range req.VariantsData {
		i, ok := index[ch.ObjectID]
		if !ok {
			logrus.WithFields(logrus.Fields{"order": o.ObjectID, "variant": ch.ObjectID}).Warn("order variant not found, skipped")
			continue
		}
		vov := variants[i]
		saved, err := s.applyVariantChange(ctx, &vov, ch)
		if err != nil {
			return models.DesignerRecord{}, err
		}
		if !saved {
			continue
		}
		variants[i] = vov
		if sku, ok := skus[vov.VariantID]; ok {
			products.add(sku.ProductID)
		}
	}

	var keep []models.VendorOrderVariant
	var zeroed []string
	for _, v := range variants {
		if v.Units > 0 {
			keep = append(keep, v)
		} else {
			zeroed = append(zeroed, v.ObjectID)
		}
	}

	if len(keep) == 0 {
		if err := s.destroyVendorOrder(ctx, o, zeroed); err != nil {
			return models.DesignerRecord{}, err
		}
	} else {
		if err := s.dropOrderVariants(ctx, zeroed); err != nil {
			return models.DesignerRecord{}, err
		}
		if err := s.saveEditedOrder(ctx, &o, keep, req.Message); err != nil {
			return models.DesignerRecord{}, err
		}
	}

	s.refreshInventory(ctx, "saveVendorOrder", products.ids)
	return s.freshRecord(ctx, d.DesignerID)
}

// applyVariantChange updates one order variant. When received grows, the
// increment is split by PlanReservation and the unreserved part lands in
// stock in the same write as the new received count. The write is
// conditional on the received count read earlier, so a receipt recorded
// concurrently fails with ErrConflict instead of counting twice.
func (s *Service) applyVariantChange(ctx context.Context, vov *models.VendorOrderVariant, ch models.VariantChange) (bool, error) {
	before := vov.Received
	if ch.Units != nil {
		vov.Units = *ch.Units
	}
	if ch.Notes != nil {
		vov.Notes = *ch.Notes
	}
	if ch.Received != nil {
		vov.Received = *ch.Received
	}
	if vov.Received >= vov.Units {
		vov.Done = true
	}

	var plan ReservationPlan
	increment := vov.Received - before
	if increment > 0 {
		demand, err := s.repo.Demand(ctx, vov.ObjectID)
		if err != nil {
			return false, storeErr("demand", err)
		}
		plan = PlanReservation(increment, demand)
	}

	err := s.repo.SaveReceipt(ctx, vov, before, plan.Unreserved)
	if isMiss(err) {
		logrus.WithFields(logrus.Fields{"variant": vov.VariantID, "order": vov.VendorOrderID}).Warn("variant not found, receipt skipped")
		return false, nil
	}
	if err != nil {
		return false, storeErr("save order variant "+vov.ObjectID, err)
	}
	if increment <= 0 {
		return true, nil
	}

	metrics.RecordReceived(plan.Reserved, plan.Unreserved)
	logrus.WithFields(logrus.Fields{
		"variant":    vov.ObjectID,
		"received":   increment,
		"reserved":   plan.Reserved,
		"unreserved": plan.Unreserved,
	}).Info("units received")
	return true, nil
}

func (s *Service) saveEditedOrder(ctx context.Context, o *models.VendorOrder, variants []models.VendorOrderVariant, message string) error {
	o.Message = message
	received := !o.ReceivedAll && fullyReceived(variants)
	if received {
		now := s.now()
		o.ReceivedAll = true
		o.DateReceived = &now
	}
	if err := s.putVendorOrder(ctx, o); err != nil {
		return err
	}
	if !received {
		return s.touchVendor(ctx, o.VendorID)
	}

	if err := s.repo.DetachOrder(ctx, o.VendorID, o.ObjectID); err != nil {
		return storeErr("detach order", err)
	}
	if err := s.touchVendor(ctx, o.VendorID); err != nil {
		return err
	}
	metrics.RecordTransition("received")
	logrus.WithField("order", o.VendorOrderNumber).Info("vendor order fully received")
	return nil
}

// dropOrderVariants destroys zero-unit variants and the order lines' references to them.
func (s *Service) dropOrderVariants(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.repo.UnlinkOrderVariants(ctx, ids); err != nil {
		return storeErr("unlink order variants", err)
	}
	if err := s.repo.DestroyOrderVariants(ctx, ids); err != nil {
		return storeErr("destroy order variants", err)
	}
	return nil
}

// destroyVendorOrder removes an order that has no units left, together with
// its variants and every reference to it.
func (s *Service) destroyVendorOrder(ctx context.Context, o models.VendorOrder, variantIDs []string) error {
	if err := s.repo.DetachOrder(ctx, o.VendorID, o.ObjectID); err != nil {
		return storeErr("detach order", err)
	}
	if err := s.repo.UnlinkVendorOrder(ctx, o.ObjectID); err != nil {
		return storeErr("unlink vendor order", err)
	}
	if err := s.dropOrderVariants(ctx, variantIDs); err != nil {
		return err
	}
	if err := s.repo.DestroyVendorOrder(ctx, o.ObjectID); err != nil && !isMiss(err) {
		return storeErr("destroy vendor order", err)
	}
	if err := s.touchVendor(ctx, o.VendorID); err != nil {
		return err
	}

	metrics.RecordTransition("deleted")
	logrus.WithField("order", o.VendorOrderNumber).Info("vendor order deleted")
	return nil
}

// productSet collects distinct product ids in first-seen order.
type productSet struct {
	seen map[int]struct{}
	ids  []int
}

func (p *productSet) add(id int) {
	if id == 0 {
		return
	}
	if p.seen == nil {
		p.seen = make(map[int]struct{})
	}
	if _, ok := p.seen[id]; ok {
		return
	}
	p.seen[id] = struct{}{}
	p.ids = append(p.ids, id)
}
