package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/errs"
	"github.com/gearshed/gearshed/internal/testutil"
)

func strptr(s string) *string { return &s }

func nullDecimal(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func seedEquipment(t *testing.T, repo *EquipmentRepository, n catalog.NewEquipment) *catalog.Equipment {
	t.Helper()
	item, err := repo.Create(context.Background(), n)
	require.NoError(t, err)
	return item
}

func TestEquipmentCreateAndGet(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	created := seedEquipment(t, repo, catalog.NewEquipment{
		Name:              "QSC K12.2",
		Description:       "2000W powered speaker",
		EquipmentType:     catalog.TypeSpeaker,
		Brand:             strptr("QSC"),
		RentalPricePerDay: nullDecimal("75.00"),
	})

	assert.NotZero(t, created.ID)
	assert.Equal(t, catalog.StatusAvailable, created.AvailabilityStatus)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "QSC K12.2", got.Name)
	require.True(t, got.RentalPricePerDay.Valid)
	assert.True(t, got.RentalPricePerDay.Decimal.Equal(decimal.RequireFromString("75.00")),
		"price should round-trip exactly, got %s", got.RentalPricePerDay.Decimal)

	_, err = repo.GetByID(ctx, created.ID+1000)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestEquipmentListingOrder(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	seedEquipment(t, repo, catalog.NewEquipment{
		Name: "Zeta Light", Description: "par can", EquipmentType: catalog.TypeLight,
	})
	seedEquipment(t, repo, catalog.NewEquipment{
		Name: "Alpha Mixer", Description: "8 channel mixer", EquipmentType: catalog.TypeMixer,
		AvailabilityStatus: catalog.StatusRented,
	})
	seedEquipment(t, repo, catalog.NewEquipment{
		Name: "Beta Light", Description: "moving head", EquipmentType: catalog.TypeLight,
	})

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Alpha Mixer", all[0].Name)
	assert.Equal(t, "Beta Light", all[1].Name)
	assert.Equal(t, "Zeta Light", all[2].Name)

	lights, err := repo.GetByType(ctx, catalog.TypeLight)
	require.NoError(t, err)
	require.Len(t, lights, 2)
	assert.Equal(t, "Beta Light", lights[0].Name)

	available, err := repo.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, available, 2, "rented item excluded")

	rented, err := repo.GetByAvailability(ctx, catalog.StatusRented)
	require.NoError(t, err)
	require.Len(t, rented, 1)
	assert.Equal(t, "Alpha Mixer", rented[0].Name)

	_, err = repo.GetByType(ctx, "drone")
	assert.True(t, errs.IsKind(err, errs.InvalidValue))
}

func TestEquipmentSearch(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	seedEquipment(t, repo, catalog.NewEquipment{
		Name:          "Strobe Light",
		Description:   "fast strobe effect light for dance floors",
		EquipmentType: catalog.TypeLight,
	})
	seedEquipment(t, repo, catalog.NewEquipment{
		Name:          "Par Light",
		Description:   "wash light that includes a strobe mode",
		EquipmentType: catalog.TypeLight,
	})
	seedEquipment(t, repo, catalog.NewEquipment{
		Name:          "XLR Cable",
		Description:   "balanced audio cable",
		EquipmentType: catalog.TypeCable,
	})

	results, err := repo.Search(ctx, "strobe")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Strobe Light", results[0].Name, "more relevant match ranks first")
	assert.Equal(t, "Par Light", results[1].Name)

	results, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, results, "blank query matches nothing")

	results, err = repo.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = repo.Search(ctx, "nonexistent gadget")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEquipmentPartialUpdate(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	created := seedEquipment(t, repo, catalog.NewEquipment{
		Name:          "Shure SM58",
		Description:   "dynamic vocal microphone",
		EquipmentType: catalog.TypeMicrophone,
		Brand:         strptr("Shure"),
	})

	status := catalog.StatusMaintenance
	updated, err := repo.Update(ctx, created.ID, catalog.EquipmentUpdate{
		AvailabilityStatus: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, catalog.StatusMaintenance, updated.AvailabilityStatus)
	assert.Equal(t, "Shure SM58", updated.Name, "unnamed fields keep stored values")
	require.NotNil(t, updated.Brand)
	assert.Equal(t, "Shure", *updated.Brand)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at must advance")

	var cleared *string
	updated, err = repo.Update(ctx, created.ID, catalog.EquipmentUpdate{Brand: &cleared})
	require.NoError(t, err)
	assert.Nil(t, updated.Brand, "present-but-nil clears the column")

	_, err = repo.Update(ctx, created.ID, catalog.EquipmentUpdate{})
	assert.True(t, errs.IsKind(err, errs.InvalidValue), "empty update rejected")

	name := "new name"
	_, err = repo.Update(ctx, created.ID+1000, catalog.EquipmentUpdate{Name: &name})
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestEquipmentDelete(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewEquipmentRepository(db)
	ctx := context.Background()

	created := seedEquipment(t, repo, catalog.NewEquipment{
		Name: "Case", Description: "road case", EquipmentType: catalog.TypeCase,
	})

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.True(t, errs.IsKind(repo.Delete(ctx, created.ID), errs.NotFound))
}
