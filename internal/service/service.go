package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"vendorflow/internal/mailer"
	"vendorflow/internal/models"
	"vendorflow/internal/repository"
)

type Functions interface {
	GetDesigners(ctx context.Context, req models.GetDesignersRequest) (models.DesignersPage, error)
	GetDesigner(ctx context.Context, designerID int) (models.DesignerRecord, error)
	LoadDesigner(ctx context.Context, req models.LoadDesignerRequest) (models.LoadDesignerResult, error)
	SaveVendor(ctx context.Context, req models.SaveVendorRequest) (models.DesignerRecord, error)
	CreateVendorOrder(ctx context.Context, req models.CreateVendorOrderRequest) (models.DesignerRecord, error)
	SaveVendorOrder(ctx context.Context, req models.SaveVendorOrderRequest) (models.DesignerRecord, error)
	SendVendorOrder(ctx context.Context, req models.SendVendorOrderRequest) (models.SendVendorOrderResult, error)

	HandleDesignerMessage(ctx context.Context, payload []byte) error
}

// InventoryRefresher asks the fulfillment side to recompute orders waiting on
// stock for the given products.
type InventoryRefresher interface {
	RefreshInventoryQueue(ctx context.Context, reason string, productIDs []int) error
}

type Options struct {
	MultiVendorDesignerID int
	DesignersPerPage      int
	FanoutLimit           int
	MailFrom              string
	MailCC                []string
	MailBCC               []string
}

func (o Options) withDefaults() Options {
	if o.MultiVendorDesignerID == 0 {
		o.MultiVendorDesignerID = 47
	}
	if o.DesignersPerPage <= 0 {
		o.DesignersPerPage = 20
	}
	if o.FanoutLimit <= 0 {
		o.FanoutLimit = 8
	}
	return o
}

type Service struct {
	repo      *repository.Repository
	mailer    mailer.Sender
	refresher InventoryRefresher
	opts      Options

	v     *validator.Validate
	now   func() time.Time
	loads singleflight.Group

	// gens counts invalidations per designer; a load only caches its record
	// if no invalidation happened while it ran.
	gensMu sync.Mutex
	gens   map[int]uint64
}

var _ Functions = (*Service)(nil)

func NewService(repo *repository.Repository, m mailer.Sender, r InventoryRefresher, opts Options) *Service {
	return &Service{
		repo:      repo,
		mailer:    m,
		refresher: r,
		opts:      opts.withDefaults(),
		v:         validator.New(),
		now:       func() time.Time { return time.Now().UTC() },
		gens:      make(map[int]uint64),
	}
}

func (s *Service) refreshInventory(ctx context.Context, reason string, productIDs []int) {
	if s.refresher == nil {
		return
	}
	if productIDs == nil {
		productIDs = []int{}
	}
	if err := s.refresher.RefreshInventoryQueue(ctx, reason, productIDs); err != nil {
		logrus.WithError(err).WithField("reason", reason).Error("inventory queue refresh failed")
	}
}
