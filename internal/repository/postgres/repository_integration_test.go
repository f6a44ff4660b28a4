package postgres_test

import (
	"context"
	"sync"
	"testing"

	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorflow/internal/models"
	repo "vendorflow/internal/repository"
	pg "vendorflow/internal/repository/postgres"
)

type pgEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	DB       *gorm.DB
	R        *repo.Repository
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres integration test")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=vendorflow",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)

	env := &pgEnv{pool: pool, resource: resource}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	require.NoError(t, pool.Retry(func() error {
		db, err := pg.ConnectDB(pg.Config{
			Host:     "localhost",
			Port:     resource.GetPort("5432/tcp"),
			Username: "app",
			Password: "app",
			DbName:   "vendorflow",
			SslMode:  "disable",
		})
		if err != nil {
			return err
		}
		if err := pg.Migrate(db); err != nil {
			_ = db.Close()
			return err
		}
		env.DB = db
		env.R = repo.NewRepository(db)
		return nil
	}))
	t.Cleanup(func() { _ = env.DB.Close() })

	return env
}

func Test_Postgres_Designers_SaveFindList(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	for i, name := range []string{"Zed", "amber", "Moss"} {
		d := &models.Designer{DesignerID: 100 + i, Name: name, HasSentVendorOrder: name == "Moss"}
		require.NoError(t, env.R.SaveDesigner(ctx, d))
		require.NotEmpty(t, d.ObjectID)
	}

	got, err := env.R.FindDesigner(ctx, 102)
	require.NoError(t, err)
	require.Equal(t, "Moss", got.Name)

	_, err = env.R.FindDesigner(ctx, 999)
	require.ErrorIs(t, err, models.ErrRecordNotFound)

	page, total, err := env.R.ListDesigners(ctx, models.DesignerQuery{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, page, 2)
	require.Equal(t, "amber", page[0].Name)
	require.Equal(t, "Moss", page[1].Name)

	page, total, err = env.R.ListDesigners(ctx, models.DesignerQuery{Subpage: models.SubpageSent})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, 102, page[0].DesignerID)

	got.Name = "Moss & Fern"
	require.NoError(t, env.R.SaveDesigner(ctx, &got))
	again, err := env.R.FindDesigner(ctx, 102)
	require.NoError(t, err)
	require.Equal(t, "Moss & Fern", again.Name)
}

func Test_Postgres_VendorLinks_And_ActiveOrders(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	d := &models.Designer{DesignerID: 1, Name: "Ines"}
	require.NoError(t, env.R.SaveDesigner(ctx, d))
	v := &models.Vendor{Name: "Ines Atelier", Abbreviation: "INE"}
	require.NoError(t, env.R.SaveVendor(ctx, v))

	require.NoError(t, env.R.LinkDesignerVendor(ctx, d.ObjectID, v.ObjectID))
	require.NoError(t, env.R.LinkDesignerVendor(ctx, d.ObjectID, v.ObjectID))

	vendors, err := env.R.VendorsForDesigner(ctx, d.ObjectID)
	require.NoError(t, err)
	require.Len(t, vendors, 1)

	designers, err := env.R.DesignersForVendor(ctx, v.ObjectID)
	require.NoError(t, err)
	require.Len(t, designers, 1)
	require.Equal(t, 1, designers[0].DesignerID)

	o := &models.VendorOrder{VendorID: v.ObjectID, VendorOrderNumber: "INE1"}
	require.NoError(t, env.R.SaveVendorOrder(ctx, o))
	require.NoError(t, env.R.AttachOrder(ctx, v.ObjectID, o.ObjectID))

	active, err := env.R.ActiveOrders(ctx, v.ObjectID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "INE1", active[0].VendorOrderNumber)

	require.NoError(t, env.R.DetachOrder(ctx, v.ObjectID, o.ObjectID))
	active, err = env.R.ActiveOrders(ctx, v.ObjectID)
	require.NoError(t, err)
	require.Empty(t, active)
}

func Test_Postgres_SaveReceipt_AtomicInventory(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	variant := &models.Variant{VariantID: 11, ProductID: 5, InventoryLevel: 1}
	require.NoError(t, env.R.SaveVariant(ctx, variant))

	vov := &models.VendorOrderVariant{VendorOrderID: "o", VariantID: variant.ObjectID, Units: 4}
	require.NoError(t, env.R.SaveOrderVariants(ctx, []*models.VendorOrderVariant{vov}))

	vov.Received, vov.Done = 4, true
	require.NoError(t, env.R.SaveReceipt(ctx, vov, 0, 3))

	got, err := env.R.GetVariants(ctx, []string{variant.ObjectID})
	require.NoError(t, err)
	require.Equal(t, 4, got[variant.ObjectID].InventoryLevel)

	again := *vov
	require.ErrorIs(t, env.R.SaveReceipt(ctx, &again, 0, 3), models.ErrConflict)
	got, err = env.R.GetVariants(ctx, []string{variant.ObjectID})
	require.NoError(t, err)
	require.Equal(t, 4, got[variant.ObjectID].InventoryLevel, "conflicting receipt adds nothing")

	orphan := &models.VendorOrderVariant{VendorOrderID: "o", VariantID: "missing", Units: 1}
	require.NoError(t, env.R.SaveOrderVariants(ctx, []*models.VendorOrderVariant{orphan}))
	orphan.Received = 1
	err = env.R.SaveReceipt(ctx, orphan, 0, 1)
	require.ErrorIs(t, err, models.ErrRecordNotFound)

	variants, err := env.R.OrderVariants(ctx, "o")
	require.NoError(t, err)
	require.Len(t, variants, 2)
	for _, v := range variants {
		if v.ObjectID == orphan.ObjectID {
			require.Zero(t, v.Received, "rolled back receipt must not persist")
		}
	}
}

func Test_Postgres_NextVendorOrderCount_Concurrent(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	v := &models.Vendor{Name: "Ines Atelier", Abbreviation: "INE"}
	require.NoError(t, env.R.SaveVendor(ctx, v))

	const n = 20
	counts := make(chan int, n)
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := env.R.NextVendorOrderCount(ctx, v.ObjectID)
			if assert.NoError(t, err) {
				counts <- got.VendorOrderCount
			}
		}()
	}
	wg.Wait()
	close(counts)

	seen := make(map[int]bool, n)
	for c := range counts {
		seen[c] = true
	}
	require.Len(t, seen, n)

	v.Email = "ines@example.com"
	require.NoError(t, env.R.SaveVendor(ctx, v))
	got, err := env.R.GetVendor(ctx, v.ObjectID)
	require.NoError(t, err)
	require.Equal(t, n, got.VendorOrderCount, "saving a stale copy keeps the counter")

	require.NoError(t, env.R.SaveVendorOrder(ctx, &models.VendorOrder{VendorID: v.ObjectID, VendorOrderNumber: "INE1"}))
	require.Error(t, env.R.SaveVendorOrder(ctx, &models.VendorOrder{VendorID: v.ObjectID, VendorOrderNumber: "INE1"}))
}

func Test_Postgres_Demand_And_Refs(t *testing.T) {
	env := upPostgres(t)
	ctx := context.Background()

	var ids []string
	for _, q := range []int{2, 1} {
		p := &models.OrderProduct{Quantity: q}
		require.NoError(t, env.R.SaveOrderProduct(ctx, p))
		ids = append(ids, p.ObjectID)
	}

	require.NoError(t, env.R.LinkDemand(ctx, "vov-1", ids))
	require.NoError(t, env.R.LinkDemand(ctx, "vov-1", ids[:1]))

	demand, err := env.R.Demand(ctx, "vov-1")
	require.NoError(t, err)
	require.Len(t, demand, 2)
	require.Equal(t, 2, demand[0].Quantity)
	require.Equal(t, 1, demand[1].Quantity)

	require.NoError(t, env.R.AddOrderProductRefs(ctx, []models.OrderProductRef{
		{OrderProductID: ids[0], Kind: models.RefVendorOrders, RefID: "order-1"},
		{OrderProductID: ids[0], Kind: models.RefAwaitingInventory, RefID: "vov-1"},
	}))
	require.NoError(t, env.R.UnlinkVendorOrder(ctx, "order-1"))
	require.NoError(t, env.R.UnlinkOrderVariants(ctx, []string{"vov-1"}))
	require.NoError(t, env.R.DestroyOrderVariants(ctx, []string{"vov-1"}))

	refs, err := env.R.OrderProductRefs(ctx, ids[0])
	require.NoError(t, err)
	require.Empty(t, refs)

	demand, err = env.R.Demand(ctx, "vov-1")
	require.NoError(t, err)
	require.Empty(t, demand)
}

func Test_Postgres_DestroyVendorOrder_Missing(t *testing.T) {
	env := upPostgres(t)
	err := env.R.DestroyVendorOrder(context.Background(), "nope")
	require.ErrorIs(t, err, models.ErrRecordNotFound)
}

func Test_Postgres_AdjustInventory_DroppedTable(t *testing.T) {
	env := upPostgres(t)
	require.NoError(t, env.DB.DropTable(&models.Variant{}).Error)

	err := env.R.AdjustInventory(context.Background(), "x", 1)
	require.Error(t, err)
}
