package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/errs"
	"github.com/gearshed/gearshed/internal/repository"
	"github.com/gearshed/gearshed/internal/server"
	"github.com/gearshed/gearshed/internal/testutil"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()

	cfg := testutil.TestConfig(t)
	db := testutil.OpenMigratedDatabase(t)
	logger := zerolog.Nop()

	srv := &server.Server{Config: cfg, Logger: &logger, DB: db}
	repos := repository.NewRepositories(db)
	return NewServices(srv, repos), repos
}

func seedPackageEquipment(t *testing.T, repos *repository.Repositories) (speaker, light *catalog.Equipment) {
	t.Helper()
	ctx := context.Background()

	price := decimal.NullDecimal{Decimal: decimal.RequireFromString("80.00"), Valid: true}
	speaker, err := repos.Equipment.Create(ctx, catalog.NewEquipment{
		Name:              "Sub",
		Description:       "18 inch subwoofer",
		EquipmentType:     catalog.TypeSpeaker,
		RentalPricePerDay: price,
	})
	require.NoError(t, err)

	light, err = repos.Equipment.Create(ctx, catalog.NewEquipment{
		Name:          "Derby",
		Description:   "derby effect light",
		EquipmentType: catalog.TypeLight,
	})
	require.NoError(t, err)
	return speaker, light
}

func TestCreatePackageFromEquipment(t *testing.T) {
	services, repos := newTestServices(t)
	speaker, light := seedPackageEquipment(t, repos)
	ctx := context.Background()

	details, err := services.Package.CreatePackageFromEquipment(ctx,
		catalog.NewCategory{Name: "Bass Night", TypicalEventSize: catalog.SizeMedium},
		[]catalog.PackageEntry{
			{EquipmentID: speaker.ID, Quantity: 2, Required: true},
			{EquipmentID: light.ID, Quantity: 1, Required: false},
		})
	require.NoError(t, err)

	assert.Equal(t, "Bass Night", details.Category.Name)
	require.Len(t, details.Items, 2)
	assert.Equal(t, 2, details.Totals.TotalItems)
	assert.Equal(t, 1, details.Totals.RequiredItems)
	assert.True(t, details.Totals.EstimatedDailyCost.Equal(decimal.RequireFromString("160.00")))
	assert.True(t, details.Totals.IncompletePricing, "unpriced light leaves the estimate partial")
}

func TestCreatePackageFromEquipmentRollsBack(t *testing.T) {
	services, repos := newTestServices(t)
	speaker, _ := seedPackageEquipment(t, repos)
	ctx := context.Background()

	_, err := services.Package.CreatePackageFromEquipment(ctx,
		catalog.NewCategory{Name: "Broken Package", TypicalEventSize: catalog.SizeSmall},
		[]catalog.PackageEntry{
			{EquipmentID: speaker.ID, Quantity: 1, Required: true},
			{EquipmentID: speaker.ID + 1000, Quantity: 1, Required: true},
		})
	assert.True(t, errs.IsKind(err, errs.DanglingReference))

	// The category from the failed transaction must not survive.
	cats, err := repos.Category.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestDuplicatePackage(t *testing.T) {
	services, repos := newTestServices(t)
	speaker, light := seedPackageEquipment(t, repos)
	ctx := context.Background()

	src, err := services.Package.CreatePackageFromEquipment(ctx,
		catalog.NewCategory{Name: "Original", TypicalEventSize: catalog.SizeSmall},
		[]catalog.PackageEntry{
			{EquipmentID: speaker.ID, Quantity: 2, Required: true},
			{EquipmentID: light.ID, Quantity: 3, Required: false},
		})
	require.NoError(t, err)

	dup, err := services.Package.DuplicatePackage(ctx, src.Category.ID,
		catalog.NewCategory{Name: "Copy", TypicalEventSize: catalog.SizeSmall})
	require.NoError(t, err)

	assert.NotEqual(t, src.Category.ID, dup.Category.ID)
	require.Len(t, dup.Items, 2)
	assert.Equal(t, src.Totals, dup.Totals)

	_, err = services.Package.DuplicatePackage(ctx, src.Category.ID,
		catalog.NewCategory{Name: "Original", TypicalEventSize: catalog.SizeSmall})
	assert.True(t, errs.IsKind(err, errs.DuplicateName))

	_, err = services.Package.DuplicatePackage(ctx, src.Category.ID+1000,
		catalog.NewCategory{Name: "Orphan", TypicalEventSize: catalog.SizeSmall})
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestGetPackagesByAudienceAndSize(t *testing.T) {
	services, repos := newTestServices(t)
	speaker, _ := seedPackageEquipment(t, repos)
	ctx := context.Background()

	audience := "wedding"
	cat, err := repos.Category.Create(ctx, catalog.NewCategory{
		Name:             "Wedding Sound",
		TargetAudience:   &audience,
		TypicalEventSize: catalog.SizeMedium,
	})
	require.NoError(t, err)
	_, err = repos.Package.Upsert(ctx, speaker.ID, cat.ID, 2, true)
	require.NoError(t, err)

	details, err := services.Package.GetPackagesByAudienceAndSize(ctx, "wedding", catalog.SizeMedium)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Wedding Sound", details[0].Category.Name)
	assert.Equal(t, 1, details[0].Totals.TotalItems)

	details, err = services.Package.GetPackagesByAudienceAndSize(ctx, "corporate", catalog.SizeMedium)
	require.NoError(t, err)
	assert.Empty(t, details)
}
