package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"vendorflow/internal/mailer"
	"vendorflow/internal/metrics"
	"vendorflow/internal/models"
)

// SendVendorOrder emails an order to its vendor. Rejections (unknown order,
// already sent, vendor without email) go to the result's Errors list and do
// not fail the call. Nothing about the order changes unless the email was
// accepted.
func (s *Service) SendVendorOrder(ctx context.Context, req models.SendVendorOrderRequest) (res models.SendVendorOrderResult, err error) {
	track := metrics.TrackFunction("sendVendorOrder")
	defer func() { track(err) }()

	if err := s.validate(req); err != nil {
		return models.SendVendorOrderResult{}, err
	}
	d, err := s.findDesigner(ctx, req.DesignerID)
	if err != nil {
		return models.SendVendorOrderResult{}, err
	}

	res.Errors = []string{}
	reject := func(msg string) (models.SendVendorOrderResult, error) {
		logrus.WithField("order", req.OrderID).Warn(msg)
		res.Errors = append(res.Errors, msg)
		return s.sendResult(ctx, d.DesignerID, res)
	}

	o, err := s.repo.GetVendorOrder(ctx, req.OrderID)
	if isMiss(err) {
		return reject("Vendor order not found")
	}
	if err != nil {
		return models.SendVendorOrderResult{}, storeErr("load vendor order", err)
	}
	if o.OrderedAll {
		return reject(fmt.Sprintf("Vendor order %s has already been sent", o.VendorOrderNumber))
	}

	v, err := s.repo.GetVendor(ctx, o.VendorID)
	if isMiss(err) {
		return reject(fmt.Sprintf("Vendor for order %s not found", o.VendorOrderNumber))
	}
	if err != nil {
		return models.SendVendorOrderResult{}, storeErr("load vendor", err)
	}
	if strings.TrimSpace(v.Email) == "" {
		return reject(fmt.Sprintf("Vendor %s has no email address", v.Name))
	}

	variants, err := s.repo.OrderVariants(ctx, o.ObjectID)
	if err != nil {
		return models.SendVendorOrderResult{}, storeErr("order variants", err)
	}
	skus, err := s.repo.GetVariants(ctx, variantRefs(variants))
	if err != nil {
		return models.SendVendorOrderResult{}, storeErr("variants", err)
	}

	msg := mailer.OrderMessage{
		OrderNumber: o.VendorOrderNumber,
		VendorName:  v.Name,
		FirstName:   v.FirstName,
		Message:     req.Message,
	}
	var products productSet
	for _, vov := range variants {
		sku, ok := skus[vov.VariantID]
		if !ok {
			logrus.WithFields(logrus.Fields{"order": o.VendorOrderNumber, "variant": vov.VariantID}).Warn("variant not found, left out of email")
			continue
		}
		products.add(sku.ProductID)
		line := mailer.OrderLine{
			Product: sku.ProductName,
			Sku:     sku.Sku,
			Color:   sku.Color,
			Size:    sku.Size,
			Units:   vov.Units,
			Notes:   vov.Notes,
		}
		if from, ok := skus[vov.ResizeVariantID]; ok && vov.IsResize {
			line.ResizeFrom = from.Size
		}
		msg.Lines = append(msg.Lines, line)
	}

	rendered, err := mailer.FormatVendorOrder(msg)
	if err != nil {
		return models.SendVendorOrderResult{}, fmt.Errorf("format vendor order %s: %w", o.VendorOrderNumber, err)
	}
	emailID, err := s.mailer.Send(ctx, mailer.Email{
		From:    s.opts.MailFrom,
		To:      []string{v.Email},
		Cc:      s.opts.MailCC,
		Bcc:     s.opts.MailBCC,
		Subject: rendered.Subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
	})
	if err != nil {
		metrics.EmailCounter.WithLabelValues("failed").Inc()
		logrus.WithError(err).WithField("order", o.VendorOrderNumber).Error("vendor order email failed")
		return models.SendVendorOrderResult{}, fmt.Errorf("send vendor order %s: %w: %w", o.VendorOrderNumber, ErrDelivery, err)
	}
	metrics.EmailCounter.WithLabelValues("sent").Inc()

	if err := s.markOrdered(ctx, variants); err != nil {
		return models.SendVendorOrderResult{}, err
	}

	now := s.now()
	o.OrderedAll = true
	o.EmailID = emailID
	o.DateOrdered = &now
	o.Message = req.Message
	if err := s.putVendorOrder(ctx, &o); err != nil {
		return models.SendVendorOrderResult{}, err
	}
	if err := s.repo.AttachOrder(ctx, v.ObjectID, o.ObjectID); err != nil {
		return models.SendVendorOrderResult{}, storeErr("attach order", err)
	}
	if err := s.touchVendor(ctx, v.ObjectID); err != nil {
		return models.SendVendorOrderResult{}, err
	}

	metrics.RecordTransition("sent")
	logrus.WithFields(logrus.Fields{"order": o.VendorOrderNumber, "email": emailID}).Info("vendor order sent")

	s.refreshInventory(ctx, "sendVendorOrder", products.ids)
	res.SuccessMessage = fmt.Sprintf("Vendor order %s sent to %s", o.VendorOrderNumber, v.Email)
	return s.sendResult(ctx, d.DesignerID, res)
}

// markOrdered flags every variant as ordered and moves resize units out of
// the source size.
func (s *Service) markOrdered(ctx context.Context, variants []models.VendorOrderVariant) error {
	ptrs := make([]*models.VendorOrderVariant, len(variants))
	for i := range variants {
		variants[i].Ordered = true
		ptrs[i] = &variants[i]
	}
	if err := s.repo.SaveOrderVariants(ctx, ptrs); err != nil {
		return storeErr("save order variants", err)
	}

	for _, vov := range variants {
		if !vov.IsResize || vov.ResizeVariantID == "" {
			continue
		}
		err := s.repo.AdjustInventory(ctx, vov.ResizeVariantID, -vov.Units)
		if isMiss(err) {
			logrus.WithField("variant", vov.ResizeVariantID).Warn("resize variant not found, inventory unchanged")
			continue
		}
		if err != nil {
			return storeErr("adjust resize inventory", err)
		}
	}
	return nil
}

func (s *Service) sendResult(ctx context.Context, designerID int, res models.SendVendorOrderResult) (models.SendVendorOrderResult, error) {
	rec, err := s.freshRecord(ctx, designerID)
	if err != nil {
		return models.SendVendorOrderResult{}, err
	}
	res.UpdatedDesigner = rec
	return res, nil
}
