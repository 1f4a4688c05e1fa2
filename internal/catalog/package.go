package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Membership is a junction row linking one equipment item to one category
// with a quantity and a required/optional flag. At most one membership
// exists per (equipment_id, category_id) pair.
type Membership struct {
	ID                int64     `json:"id" db:"id"`
	EquipmentID       int64     `json:"equipment_id" db:"equipment_id"`
	CategoryID        int64     `json:"category_id" db:"category_id"`
	QuantityInPackage int       `json:"quantity_in_package" db:"quantity_in_package"`
	IsRequired        bool      `json:"is_required" db:"is_required"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// PackageItem is one membership joined with its equipment row, as seen in
// package views. Items are ordered required-first, then by equipment name.
type PackageItem struct {
	Equipment         Equipment `json:"equipment"`
	QuantityInPackage int       `json:"quantity_in_package"`
	IsRequired        bool      `json:"is_required"`
}

// PackageTotals summarizes a package's composition and cost.
//
// EstimatedDailyCost is the sum over items of quantity x rental price per
// day. Items with no price contribute zero and set IncompletePricing
// instead of failing the computation.
type PackageTotals struct {
	TotalItems         int             `json:"total_items"`
	RequiredItems      int             `json:"required_items"`
	OptionalItems      int             `json:"optional_items"`
	EstimatedDailyCost decimal.Decimal `json:"estimated_daily_cost"`
	IncompletePricing  bool            `json:"incomplete_pricing"`
}

// PackageDetails is the full derived view of one category: the category
// row, its ordered item list, and the derived totals.
type PackageDetails struct {
	Category Category      `json:"category"`
	Items    []PackageItem `json:"items"`
	Totals   PackageTotals `json:"totals"`
}

// EquipmentPackage names one package an equipment item belongs to,
// together with the membership terms.
type EquipmentPackage struct {
	Category          Category `json:"category"`
	QuantityInPackage int      `json:"quantity_in_package"`
	IsRequired        bool     `json:"is_required"`
}

// PackageEntry is one line of a bulk package-creation request.
type PackageEntry struct {
	EquipmentID int64
	Quantity    int
	Required    bool
}
