package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"vendorflow/internal/metrics"
	"vendorflow/internal/models"
)

func (s *Service) GetDesigners(ctx context.Context, req models.GetDesignersRequest) (page models.DesignersPage, err error) {
	track := metrics.TrackFunction("getDesigners")
	defer func() { track(err) }()

	if err := s.validate(req); err != nil {
		return models.DesignersPage{}, err
	}

	per := s.opts.DesignersPerPage
	n := max(req.Page, 1)
	q := models.DesignerQuery{
		Offset:  (n - 1) * per,
		Limit:   per,
		Desc:    req.Sort == models.SortNameDesc,
		Subpage: req.Subpage,
	}
	if search := strings.TrimSpace(req.Search); search != "" {
		id, err := strconv.Atoi(search)
		if err != nil {
			return models.DesignersPage{Designers: []models.DesignerRecord{}}, nil
		}
		q.DesignerID = &id
	}

	designers, total, err := s.repo.ListDesigners(ctx, q)
	if err != nil {
		return models.DesignersPage{}, storeErr("list designers", err)
	}

	records := make([]models.DesignerRecord, len(designers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FanoutLimit)
	for i, d := range designers {
		g.Go(func() error {
			rec, err := s.designerRecord(gctx, d)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.DesignersPage{}, err
	}

	return models.DesignersPage{Designers: records, TotalPages: (total + per - 1) / per}, nil
}

// LoadDesigner upserts a designer from the catalog. A designer left without
// vendors gets one named after itself, except the multi-vendor designer whose
// vendors are managed by hand.
func (s *Service) LoadDesigner(ctx context.Context, req models.LoadDesignerRequest) (res models.LoadDesignerResult, err error) {
	track := metrics.TrackFunction("loadDesigner")
	defer func() { track(err) }()

	if err := s.validate(req); err != nil {
		return models.LoadDesignerResult{}, err
	}
	in := req.Designer

	d, err := s.repo.FindDesigner(ctx, in.ID)
	switch {
	case isMiss(err):
		d = models.Designer{DesignerID: in.ID}
		res.Added = true
	case err != nil:
		return models.LoadDesignerResult{}, storeErr("find designer", err)
	}

	d.Name = in.Name
	d.ImageFile = in.ImageFile
	d.Abbreviation = Abbreviate(in.Name)
	if err := s.repo.SaveDesigner(ctx, &d); err != nil {
		return models.LoadDesignerResult{}, storeErr("save designer", err)
	}

	vendors, err := s.repo.VendorsForDesigner(ctx, d.ObjectID)
	if err != nil {
		return models.LoadDesignerResult{}, storeErr("vendors for designer", err)
	}
	if len(vendors) == 0 && d.DesignerID != s.opts.MultiVendorDesignerID {
		v := models.Vendor{Name: d.Name}
		if err := s.putVendor(ctx, &v); err != nil {
			return models.LoadDesignerResult{}, err
		}
		if err := s.repo.LinkDesignerVendor(ctx, d.ObjectID, v.ObjectID); err != nil {
			return models.LoadDesignerResult{}, storeErr("link vendor", err)
		}
		logrus.WithFields(logrus.Fields{"designer": d.DesignerID, "vendor": v.ObjectID}).Info("created default vendor")
	}

	s.invalidate(d.DesignerID)
	logrus.WithFields(logrus.Fields{"designer": d.DesignerID, "added": res.Added}).Info("designer loaded")
	return res, nil
}

// HandleDesignerMessage loads one catalog feed document.
func (s *Service) HandleDesignerMessage(ctx context.Context, payload []byte) error {
	var in models.CatalogDesigner
	if err := json.Unmarshal(payload, &in); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	_, err := s.LoadDesigner(ctx, models.LoadDesignerRequest{Designer: in})
	return err
}
