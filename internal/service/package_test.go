package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/gearshed/gearshed/internal/catalog"
)

func priced(name string, price string) catalog.Equipment {
	return catalog.Equipment{
		Name: name,
		RentalPricePerDay: decimal.NullDecimal{
			Decimal: decimal.RequireFromString(price),
			Valid:   true,
		},
	}
}

func TestPackageTotals(t *testing.T) {
	items := []catalog.PackageItem{
		{Equipment: priced("speaker", "75.00"), QuantityInPackage: 2, IsRequired: true},
		{Equipment: priced("mixer", "40.50"), QuantityInPackage: 1, IsRequired: true},
		{Equipment: priced("light", "12.00"), QuantityInPackage: 4, IsRequired: false},
	}

	totals := packageTotals(items)

	assert.Equal(t, 3, totals.TotalItems)
	assert.Equal(t, 2, totals.RequiredItems)
	assert.Equal(t, 1, totals.OptionalItems)
	assert.False(t, totals.IncompletePricing)
	// 2*75.00 + 1*40.50 + 4*12.00
	assert.True(t, totals.EstimatedDailyCost.Equal(decimal.RequireFromString("238.50")),
		"got %s", totals.EstimatedDailyCost)
}

func TestPackageTotalsMissingPrice(t *testing.T) {
	items := []catalog.PackageItem{
		{Equipment: priced("speaker", "75.00"), QuantityInPackage: 1, IsRequired: true},
		{Equipment: catalog.Equipment{Name: "cable"}, QuantityInPackage: 10, IsRequired: true},
	}

	totals := packageTotals(items)

	assert.True(t, totals.IncompletePricing)
	assert.True(t, totals.EstimatedDailyCost.Equal(decimal.RequireFromString("75.00")),
		"unpriced items contribute zero, got %s", totals.EstimatedDailyCost)
}

func TestPackageTotalsEmpty(t *testing.T) {
	totals := packageTotals(nil)

	assert.Zero(t, totals.TotalItems)
	assert.False(t, totals.IncompletePricing)
	assert.True(t, totals.EstimatedDailyCost.IsZero())
}
