package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"vendorflow/internal/models"
)

// beforeSaveVendor fills a missing abbreviation and recomputes the derived
// flags of every designer the vendor belongs to.
func (s *Service) beforeSaveVendor(ctx context.Context, v *models.Vendor) error {
	if v.Abbreviation == "" && v.Name != "" {
		v.Abbreviation = Abbreviate(v.Name)
	}
	if v.ObjectID == "" {
		return nil
	}
	return s.recomputeDesignerFlags(ctx, v.ObjectID)
}

// beforeSaveVendorOrder assigns the order number on first save from the
// vendor's counter. A number once set is never touched again.
func (s *Service) beforeSaveVendorOrder(ctx context.Context, o *models.VendorOrder) error {
	if o.VendorOrderNumber != "" {
		return nil
	}
	v, err := s.repo.NextVendorOrderCount(ctx, o.VendorID)
	if err != nil {
		return storeErr("vendor "+o.VendorID, err)
	}
	abbrev := v.Abbreviation
	if abbrev == "" {
		abbrev = Abbreviate(v.Name)
	}
	o.VendorOrderNumber = abbrev + strconv.Itoa(v.VendorOrderCount)
	return nil
}

func (s *Service) putVendor(ctx context.Context, v *models.Vendor) error {
	if err := s.beforeSaveVendor(ctx, v); err != nil {
		return err
	}
	if err := s.repo.SaveVendor(ctx, v); err != nil {
		return storeErr("save vendor", err)
	}
	return nil
}

func (s *Service) putVendorOrder(ctx context.Context, o *models.VendorOrder) error {
	if err := s.beforeSaveVendorOrder(ctx, o); err != nil {
		return err
	}
	if err := s.repo.SaveVendorOrder(ctx, o); err != nil {
		return storeErr("save vendor order", err)
	}
	return nil
}

// touchVendor reloads and re-saves a vendor so its hook sees the current
// active order set. A vendor that vanished is only logged.
func (s *Service) touchVendor(ctx context.Context, vendorID string) error {
	v, err := s.repo.GetVendor(ctx, vendorID)
	if isMiss(err) {
		logrus.WithField("vendor", vendorID).Warn("vendor not found, flags not recomputed")
		return nil
	}
	if err != nil {
		return storeErr("load vendor", err)
	}
	return s.putVendor(ctx, &v)
}

func (s *Service) recomputeDesignerFlags(ctx context.Context, vendorID string) error {
	designers, err := s.repo.DesignersForVendor(ctx, vendorID)
	if err != nil {
		return storeErr("designers for vendor", err)
	}
	for _, d := range designers {
		vendors, err := s.repo.VendorsForDesigner(ctx, d.ObjectID)
		if err != nil {
			return storeErr("vendors for designer", err)
		}
		var orders []models.VendorOrder
		for _, v := range vendors {
			active, err := s.repo.ActiveOrders(ctx, v.ObjectID)
			if err != nil {
				return storeErr("active orders", err)
			}
			orders = append(orders, active...)
		}

		s.invalidate(d.DesignerID)

		pending, sent := DeriveFlags(orders)
		if d.HasPendingVendorOrder == pending && d.HasSentVendorOrder == sent {
			continue
		}
		d.HasPendingVendorOrder, d.HasSentVendorOrder = pending, sent
		if err := s.repo.SaveDesigner(ctx, &d); err != nil {
			return storeErr(fmt.Sprintf("save designer %d", d.DesignerID), err)
		}
	}
	return nil
}
