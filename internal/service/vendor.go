package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"vendorflow/internal/metrics"
	"vendorflow/internal/models"
)

// SaveVendor creates or edits a vendor of a designer. Nil fields are left as
// they are, empty strings clear the attribute.
func (s *Service) SaveVendor(ctx context.Context, req models.SaveVendorRequest) (rec models.DesignerRecord, err error) {
	track := metrics.TrackFunction("saveVendor")
	defer func() { track(err) }()

	if err := s.validate(req); err != nil {
		return models.DesignerRecord{}, err
	}
	if req.Email != nil && *req.Email != "" {
		if err := s.v.Var(*req.Email, "email"); err != nil {
			return models.DesignerRecord{}, fmt.Errorf("%w: email: invalid address %q", ErrValidation, *req.Email)
		}
	}

	d, err := s.findDesigner(ctx, req.DesignerID)
	if err != nil {
		return models.DesignerRecord{}, err
	}

	var v models.Vendor
	if req.VendorID != "" {
		if v, err = s.repo.GetVendor(ctx, req.VendorID); err != nil {
			return models.DesignerRecord{}, storeErr("vendor "+req.VendorID, err)
		}
	}

	if req.Name != nil {
		v.Name = *req.Name
		v.Abbreviation = Abbreviate(v.Name)
	}
	if req.FirstName != nil {
		v.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		v.LastName = *req.LastName
	}
	if req.Email != nil {
		v.Email = *req.Email
	}
	if req.WaitTime.Set {
		v.WaitTime = req.WaitTime.Value
	}

	created := v.ObjectID == ""
	if err := s.putVendor(ctx, &v); err != nil {
		return models.DesignerRecord{}, err
	}
	if err := s.repo.LinkDesignerVendor(ctx, d.ObjectID, v.ObjectID); err != nil {
		return models.DesignerRecord{}, storeErr("link vendor", err)
	}

	logrus.WithFields(logrus.Fields{"designer": d.DesignerID, "vendor": v.ObjectID, "created": created}).Info("vendor saved")
	return s.freshRecord(ctx, d.DesignerID)
}
