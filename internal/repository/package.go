package repository

import (
	"context"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/database"
	"github.com/gearshed/gearshed/internal/errs"
)

// PackageRepository persists the equipment/category junction and serves
// the joined views built on it.
type PackageRepository struct {
	q database.Querier
}

// NewPackageRepository constructs a package repository over q.
func NewPackageRepository(q database.Querier) *PackageRepository {
	return &PackageRepository{q: q}
}

const membershipColumns = `
	id, equipment_id, category_id, quantity_in_package, is_required, created_at`

// Upsert adds equipment to a package or, when the pair already exists,
// overwrites the membership terms in place. Concurrent upserts of the
// same pair serialize inside the database; last write wins and exactly
// one row remains. References to missing equipment or categories surface
// as DanglingReference.
func (r *PackageRepository) Upsert(ctx context.Context, equipmentID, categoryID int64, quantity int, required bool) (*catalog.Membership, error) {
	if quantity <= 0 {
		return nil, errs.New(errs.InvalidValue, "quantity in package must be positive")
	}

	return database.CollectOne[catalog.Membership](r.q.Query(ctx, `
		INSERT INTO equipment_categories (equipment_id, category_id, quantity_in_package, is_required)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (equipment_id, category_id) DO UPDATE
		SET quantity_in_package = EXCLUDED.quantity_in_package,
		    is_required = EXCLUDED.is_required
		RETURNING `+membershipColumns,
		equipmentID, categoryID, quantity, required,
	))
}

// Remove deletes one membership, reporting whether a row existed.
// Removing an absent pair is not an error.
func (r *PackageRepository) Remove(ctx context.Context, equipmentID, categoryID int64) (bool, error) {
	affected, err := r.q.Exec(ctx, `
		DELETE FROM equipment_categories
		WHERE equipment_id = $1 AND category_id = $2`,
		equipmentID, categoryID,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// UpdateQuantity changes the quantity of an existing membership. Unlike
// Remove, addressing an absent pair here is a NotFound error.
func (r *PackageRepository) UpdateQuantity(ctx context.Context, equipmentID, categoryID int64, quantity int) error {
	if quantity <= 0 {
		return errs.New(errs.InvalidValue, "quantity in package must be positive")
	}

	affected, err := r.q.Exec(ctx, `
		UPDATE equipment_categories
		SET quantity_in_package = $3
		WHERE equipment_id = $1 AND category_id = $2`,
		equipmentID, categoryID, quantity,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.Newf(errs.NotFound,
			"equipment %d is not part of package %d", equipmentID, categoryID)
	}
	return nil
}

// UpdateRequirement flips the required/optional flag of an existing
// membership.
func (r *PackageRepository) UpdateRequirement(ctx context.Context, equipmentID, categoryID int64, required bool) error {
	affected, err := r.q.Exec(ctx, `
		UPDATE equipment_categories
		SET is_required = $3
		WHERE equipment_id = $1 AND category_id = $2`,
		equipmentID, categoryID, required,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.Newf(errs.NotFound,
			"equipment %d is not part of package %d", equipmentID, categoryID)
	}
	return nil
}

// CopyMemberships duplicates every membership of one category into
// another, keeping quantities and flags, and returns the number of rows
// copied. Meant to run inside the transaction that created the target.
func (r *PackageRepository) CopyMemberships(ctx context.Context, fromCategoryID, toCategoryID int64) (int64, error) {
	return r.q.Exec(ctx, `
		INSERT INTO equipment_categories (equipment_id, category_id, quantity_in_package, is_required)
		SELECT equipment_id, $2, quantity_in_package, is_required
		FROM equipment_categories
		WHERE category_id = $1`,
		fromCategoryID, toCategoryID,
	)
}

// packageItemRow flattens the equipment/membership join for row
// collection; the membership columns sit beside the embedded equipment
// columns in the select list.
type packageItemRow struct {
	catalog.Equipment
	QuantityInPackage int  `db:"quantity_in_package"`
	IsRequired        bool `db:"is_required"`
}

// ItemsForCategory lists a package's contents: each member's equipment
// row with its quantity and flag, required items first, then by name.
func (r *PackageRepository) ItemsForCategory(ctx context.Context, categoryID int64) ([]catalog.PackageItem, error) {
	rows, err := database.Collect[packageItemRow](r.q.Query(ctx, `
		SELECT e.id, e.name, e.description, e.equipment_type, e.brand,
		       e.model, e.power_rating, e.dimensions, e.weight,
		       e.rental_price_per_day, e.availability_status,
		       e.created_at, e.updated_at,
		       ec.quantity_in_package, ec.is_required
		FROM equipment_categories ec
		JOIN equipment e ON e.id = ec.equipment_id
		WHERE ec.category_id = $1
		ORDER BY ec.is_required DESC, e.name`,
		categoryID,
	))
	if err != nil {
		return nil, err
	}

	items := make([]catalog.PackageItem, len(rows))
	for i, row := range rows {
		items[i] = catalog.PackageItem{
			Equipment:         row.Equipment,
			QuantityInPackage: row.QuantityInPackage,
			IsRequired:        row.IsRequired,
		}
	}
	return items, nil
}

type equipmentPackageRow struct {
	catalog.Category
	QuantityInPackage int  `db:"quantity_in_package"`
	IsRequired        bool `db:"is_required"`
}

// PackagesForEquipment lists every package one equipment item belongs to,
// with its membership terms, ordered by package name.
func (r *PackageRepository) PackagesForEquipment(ctx context.Context, equipmentID int64) ([]catalog.EquipmentPackage, error) {
	rows, err := database.Collect[equipmentPackageRow](r.q.Query(ctx, `
		SELECT c.id, c.name, c.description, c.target_audience,
		       c.typical_event_size, c.created_at, c.updated_at,
		       ec.quantity_in_package, ec.is_required
		FROM equipment_categories ec
		JOIN categories c ON c.id = ec.category_id
		WHERE ec.equipment_id = $1
		ORDER BY c.name`,
		equipmentID,
	))
	if err != nil {
		return nil, err
	}

	packages := make([]catalog.EquipmentPackage, len(rows))
	for i, row := range rows {
		packages[i] = catalog.EquipmentPackage{
			Category:          row.Category,
			QuantityInPackage: row.QuantityInPackage,
			IsRequired:        row.IsRequired,
		}
	}
	return packages, nil
}
