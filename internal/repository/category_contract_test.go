package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/errs"
	"github.com/gearshed/gearshed/internal/testutil"
)

func seedCategory(t *testing.T, repo *CategoryRepository, n catalog.NewCategory) *catalog.Category {
	t.Helper()
	cat, err := repo.Create(context.Background(), n)
	require.NoError(t, err)
	return cat
}

func TestCategoryCreateAndUniqueness(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	created := seedCategory(t, repo, catalog.NewCategory{
		Name:             "Party Package",
		Description:      strptr("speakers, lights and a mixer"),
		TargetAudience:   strptr("private"),
		TypicalEventSize: catalog.SizeSmall,
	})
	assert.NotZero(t, created.ID)

	_, err := repo.Create(ctx, catalog.NewCategory{
		Name:             "Party Package",
		TypicalEventSize: catalog.SizeLarge,
	})
	assert.True(t, errs.IsKind(err, errs.DuplicateName))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Party Package", got.Name)

	_, err = repo.GetByID(ctx, created.ID+1000)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestCategoryFilters(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	seedCategory(t, repo, catalog.NewCategory{
		Name: "Wedding Deluxe", TargetAudience: strptr("wedding"), TypicalEventSize: catalog.SizeMedium,
	})
	seedCategory(t, repo, catalog.NewCategory{
		Name: "Wedding Basic", TargetAudience: strptr("wedding"), TypicalEventSize: catalog.SizeSmall,
	})
	seedCategory(t, repo, catalog.NewCategory{
		Name: "Corporate AV", TargetAudience: strptr("corporate"), TypicalEventSize: catalog.SizeMedium,
	})

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Corporate AV", all[0].Name)

	weddings, err := repo.GetByAudience(ctx, "wedding")
	require.NoError(t, err)
	assert.Len(t, weddings, 2)

	// Audience match is exact, not case-folded.
	none, err := repo.GetByAudience(ctx, "Wedding")
	require.NoError(t, err)
	assert.Empty(t, none)

	mediumWeddings, err := repo.GetByAudienceAndSize(ctx, "wedding", catalog.SizeMedium)
	require.NoError(t, err)
	require.Len(t, mediumWeddings, 1)
	assert.Equal(t, "Wedding Deluxe", mediumWeddings[0].Name)

	medium, err := repo.GetByEventSize(ctx, catalog.SizeMedium)
	require.NoError(t, err)
	assert.Len(t, medium, 2)

	_, err = repo.GetByEventSize(ctx, "gigantic")
	assert.True(t, errs.IsKind(err, errs.InvalidValue))
}

func TestCategorySearch(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	seedCategory(t, repo, catalog.NewCategory{
		Name: "Festival Stage", Description: strptr("full outdoor rig"), TypicalEventSize: catalog.SizeLarge,
	})
	seedCategory(t, repo, catalog.NewCategory{
		Name: "Club Night", Description: strptr("indoor festival feel"), TypicalEventSize: catalog.SizeMedium,
	})

	results, err := repo.Search(ctx, "FESTIVAL")
	require.NoError(t, err)
	assert.Len(t, results, 2, "match is case-insensitive over name and description")

	results, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCategoryUpdateAndDelete(t *testing.T) {
	db := testutil.OpenMigratedDatabase(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	created := seedCategory(t, repo, catalog.NewCategory{
		Name: "DJ Starter", Description: strptr("two decks"), TypicalEventSize: catalog.SizeSmall,
	})

	size := catalog.SizeMedium
	updated, err := repo.Update(ctx, created.ID, catalog.CategoryUpdate{TypicalEventSize: &size})
	require.NoError(t, err)
	assert.Equal(t, catalog.SizeMedium, updated.TypicalEventSize)
	assert.Equal(t, "DJ Starter", updated.Name)
	require.NotNil(t, updated.Description)

	var cleared *string
	updated, err = repo.Update(ctx, created.ID, catalog.CategoryUpdate{Description: &cleared})
	require.NoError(t, err)
	assert.Nil(t, updated.Description)

	other := seedCategory(t, repo, catalog.NewCategory{
		Name: "DJ Pro", TypicalEventSize: catalog.SizeMedium,
	})
	name := "DJ Starter"
	_, err = repo.Update(ctx, other.ID, catalog.CategoryUpdate{Name: &name})
	assert.True(t, errs.IsKind(err, errs.DuplicateName), "rename onto a taken name conflicts")

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.True(t, errs.IsKind(repo.Delete(ctx, created.ID), errs.NotFound))
}
