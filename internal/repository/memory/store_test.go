package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"vendorflow/internal/models"
	"vendorflow/internal/repository/memory"
)

func TestStore_ListDesigners_FilterSortPage(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	for i, name := range []string{"charlie", "Alpha", "bravo", "delta"} {
		d := &models.Designer{DesignerID: i + 1, Name: name, HasPendingVendorOrder: i%2 == 0}
		require.NoError(t, st.SaveDesigner(ctx, d))
		require.NotEmpty(t, d.ObjectID)
	}

	page, total, err := st.ListDesigners(ctx, models.DesignerQuery{Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Equal(t, []string{"Alpha", "bravo"}, names(page))

	page, _, err = st.ListDesigners(ctx, models.DesignerQuery{Offset: 2, Limit: 2, Desc: true})
	require.NoError(t, err)
	require.Equal(t, []string{"bravo", "Alpha"}, names(page))

	page, total, err = st.ListDesigners(ctx, models.DesignerQuery{Subpage: models.SubpagePending})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, []string{"bravo", "charlie"}, names(page))

	id := 4
	page, total, err = st.ListDesigners(ctx, models.DesignerQuery{DesignerID: &id})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "delta", page[0].Name)

	page, total, err = st.ListDesigners(ctx, models.DesignerQuery{Offset: 10, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Empty(t, page)
}

func TestStore_FindDesigner_NotFound(t *testing.T) {
	_, err := memory.NewStore().FindDesigner(context.Background(), 99)
	require.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestStore_DemandKeepsAttachOrder(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	var ids []string
	for _, q := range []int{3, 1, 2} {
		p := &models.OrderProduct{Quantity: q}
		require.NoError(t, st.SaveOrderProduct(ctx, p))
		ids = append(ids, p.ObjectID)
	}

	require.NoError(t, st.LinkDemand(ctx, "vov", ids[:2]))
	require.NoError(t, st.LinkDemand(ctx, "vov", []string{ids[0], ids[2]}))

	demand, err := st.Demand(ctx, "vov")
	require.NoError(t, err)
	require.Len(t, demand, 3)
	require.Equal(t, []int{3, 1, 2}, []int{demand[0].Quantity, demand[1].Quantity, demand[2].Quantity})

	require.NoError(t, st.DestroyOrderVariants(ctx, []string{"vov"}))
	demand, err = st.Demand(ctx, "vov")
	require.NoError(t, err)
	require.Empty(t, demand)
}

func TestStore_UnlinkRefs(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	require.NoError(t, st.AddOrderProductRefs(ctx, []models.OrderProductRef{
		{OrderProductID: "p1", Kind: models.RefVendorOrders, RefID: "o1"},
		{OrderProductID: "p1", Kind: models.RefAwaitingInventoryVendorOrders, RefID: "o1"},
		{OrderProductID: "p1", Kind: models.RefAwaitingInventory, RefID: "v1"},
		{OrderProductID: "p1", Kind: models.RefVendorOrders, RefID: "o2"},
		{OrderProductID: "p1", Kind: models.RefVendorOrders, RefID: "o2"},
	}))

	refs, err := st.OrderProductRefs(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, refs, 4)

	require.NoError(t, st.UnlinkVendorOrder(ctx, "o1"))
	require.NoError(t, st.UnlinkOrderVariants(ctx, []string{"v1"}))

	refs, err = st.OrderProductRefs(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []models.OrderProductRef{{OrderProductID: "p1", Kind: models.RefVendorOrders, RefID: "o2"}}, refs)
}

func TestStore_SaveReceipt_AdjustsInventory(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	variant := &models.Variant{InventoryLevel: 4}
	require.NoError(t, st.SaveVariant(ctx, variant))

	vov := &models.VendorOrderVariant{VariantID: variant.ObjectID, Units: 5}
	require.NoError(t, st.SaveOrderVariants(ctx, []*models.VendorOrderVariant{vov}))

	vov.Received = 5
	require.NoError(t, st.SaveReceipt(ctx, vov, 0, 2))

	got, err := st.GetVariants(ctx, []string{variant.ObjectID, "missing"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, 6, got[variant.ObjectID].InventoryLevel)

	orphan := &models.VendorOrderVariant{VariantID: "missing", Units: 1}
	require.NoError(t, st.SaveOrderVariants(ctx, []*models.VendorOrderVariant{orphan}))
	orphan.Received = 1
	require.ErrorIs(t, st.SaveReceipt(ctx, orphan, 0, 1), models.ErrRecordNotFound)

	stored, err := st.OrderVariants(ctx, "")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, v := range stored {
		if v.ObjectID == orphan.ObjectID {
			require.Zero(t, v.Received, "failed receipt must not persist the variant")
		}
	}

	require.ErrorIs(t, st.SaveReceipt(ctx, &models.VendorOrderVariant{ObjectID: "nope"}, 0, 0), models.ErrRecordNotFound)
}

func TestStore_SaveReceipt_StaleReceivedConflicts(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	variant := &models.Variant{InventoryLevel: 10}
	require.NoError(t, st.SaveVariant(ctx, variant))
	vov := &models.VendorOrderVariant{VariantID: variant.ObjectID, Units: 5}
	require.NoError(t, st.SaveOrderVariants(ctx, []*models.VendorOrderVariant{vov}))

	first, second := *vov, *vov
	first.Received, second.Received = 5, 5
	require.NoError(t, st.SaveReceipt(ctx, &first, 0, 5))
	require.ErrorIs(t, st.SaveReceipt(ctx, &second, 0, 5), models.ErrConflict)

	got, err := st.GetVariants(ctx, []string{variant.ObjectID})
	require.NoError(t, err)
	require.Equal(t, 15, got[variant.ObjectID].InventoryLevel)
}

func TestStore_NextVendorOrderCount(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	v := &models.Vendor{Name: "Ines Atelier", Abbreviation: "INE"}
	require.NoError(t, st.SaveVendor(ctx, v))

	stale, err := st.GetVendor(ctx, v.ObjectID)
	require.NoError(t, err)

	for want := 1; want <= 3; want++ {
		got, err := st.NextVendorOrderCount(ctx, v.ObjectID)
		require.NoError(t, err)
		require.Equal(t, want, got.VendorOrderCount)
	}

	stale.Email = "ines@example.com"
	require.NoError(t, st.SaveVendor(ctx, &stale))
	require.Equal(t, 3, stale.VendorOrderCount, "saving a stale copy keeps the counter")

	got, err := st.GetVendor(ctx, v.ObjectID)
	require.NoError(t, err)
	require.Equal(t, 3, got.VendorOrderCount)
	require.Equal(t, "ines@example.com", got.Email)

	_, err = st.NextVendorOrderCount(ctx, "missing")
	require.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestStore_SaveVendorOrder_UniqueNumber(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	a := &models.VendorOrder{VendorID: "v", VendorOrderNumber: "INE1"}
	require.NoError(t, st.SaveVendorOrder(ctx, a))
	require.NoError(t, st.SaveVendorOrder(ctx, a), "re-saving the holder is fine")

	b := &models.VendorOrder{VendorID: "v", VendorOrderNumber: "INE1"}
	require.ErrorIs(t, st.SaveVendorOrder(ctx, b), models.ErrConflict)
}

func TestStore_ActiveOrders_AttachDetach(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	o := &models.VendorOrder{VendorID: "v"}
	require.NoError(t, st.SaveVendorOrder(ctx, o))
	require.NoError(t, st.AttachOrder(ctx, "v", o.ObjectID))
	require.NoError(t, st.AttachOrder(ctx, "v", o.ObjectID))

	active, err := st.ActiveOrders(ctx, "v")
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, st.DetachOrder(ctx, "v", o.ObjectID))
	active, err = st.ActiveOrders(ctx, "v")
	require.NoError(t, err)
	require.Empty(t, active)
}

func names(ds []models.Designer) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}
