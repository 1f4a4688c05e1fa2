package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/database"
	"github.com/gearshed/gearshed/internal/errs"
	"github.com/gearshed/gearshed/internal/repository"
	"github.com/gearshed/gearshed/internal/server"
)

// PackageService manages package composition: which equipment belongs to
// which category, in what quantity, and whether it is required. It also
// serves the derived package views and the catalog statistics.
type PackageService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewPackageService constructs the package service.
func NewPackageService(s *server.Server, repos *repository.Repositories) *PackageService {
	return &PackageService{server: s, repos: repos}
}

// AddEquipmentToPackage adds an item to a package, or overwrites the
// membership terms when the pair already exists. Two concurrent adds of
// the same pair leave exactly one row; last write wins.
func (s *PackageService) AddEquipmentToPackage(ctx context.Context, equipmentID, categoryID int64, quantity int, required bool) (*catalog.Membership, error) {
	m, err := s.repos.Package.Upsert(ctx, equipmentID, categoryID, quantity, required)
	if err != nil {
		return nil, err
	}
	s.server.Logger.Info().
		Int64("equipment_id", equipmentID).
		Int64("category_id", categoryID).
		Int("quantity", quantity).
		Bool("required", required).
		Msg("equipment added to package")
	return m, nil
}

// RemoveEquipmentFromPackage removes an item from a package. Removing an
// absent pair succeeds and reports false.
func (s *PackageService) RemoveEquipmentFromPackage(ctx context.Context, equipmentID, categoryID int64) (bool, error) {
	return s.repos.Package.Remove(ctx, equipmentID, categoryID)
}

// UpdatePackageQuantity changes the quantity of an existing membership.
func (s *PackageService) UpdatePackageQuantity(ctx context.Context, equipmentID, categoryID int64, quantity int) error {
	return s.repos.Package.UpdateQuantity(ctx, equipmentID, categoryID, quantity)
}

// UpdatePackageRequirement flips an existing membership between required
// and optional.
func (s *PackageService) UpdatePackageRequirement(ctx context.Context, equipmentID, categoryID int64, required bool) error {
	return s.repos.Package.UpdateRequirement(ctx, equipmentID, categoryID, required)
}

// GetPackageDetails returns one package with its ordered item list and
// derived totals.
func (s *PackageService) GetPackageDetails(ctx context.Context, categoryID int64) (*catalog.PackageDetails, error) {
	cat, items, err := s.repos.Category.GetWithEquipment(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return &catalog.PackageDetails{
		Category: *cat,
		Items:    items,
		Totals:   packageTotals(items),
	}, nil
}

// GetPackagesByAudienceAndSize returns the full details of every package
// matching both filters exactly.
func (s *PackageService) GetPackagesByAudienceAndSize(ctx context.Context, audience string, size catalog.EventSize) ([]catalog.PackageDetails, error) {
	cats, err := s.repos.Category.GetByAudienceAndSize(ctx, audience, size)
	if err != nil {
		return nil, err
	}
	return s.detailsFor(ctx, cats)
}

// SearchPackages looks up packages by name or description and returns
// their full details.
func (s *PackageService) SearchPackages(ctx context.Context, query string) ([]catalog.PackageDetails, error) {
	cats, err := s.repos.Category.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.detailsFor(ctx, cats)
}

// GetEquipmentPackages returns every package containing the given
// equipment item, with the membership terms.
func (s *PackageService) GetEquipmentPackages(ctx context.Context, equipmentID int64) ([]catalog.EquipmentPackage, error) {
	if _, err := s.repos.Equipment.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.repos.Package.PackagesForEquipment(ctx, equipmentID)
}

// CreatePackageFromEquipment creates a category and all its memberships
// in one transaction. All-or-nothing: any bad entry rolls the whole
// package back.
func (s *PackageService) CreatePackageFromEquipment(ctx context.Context, n catalog.NewCategory, entries []catalog.PackageEntry) (*catalog.PackageDetails, error) {
	if len(entries) == 0 {
		return nil, errs.New(errs.InvalidValue, "a package needs at least one equipment entry")
	}
	for _, e := range entries {
		if e.Quantity <= 0 {
			return nil, errs.Newf(errs.InvalidValue,
				"quantity for equipment %d must be positive", e.EquipmentID)
		}
	}

	var details *catalog.PackageDetails
	err := s.server.DB.WithTx(ctx, func(ctx context.Context, q database.Querier) error {
		repos := repository.NewRepositories(q)

		cat, err := repos.Category.Create(ctx, n)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if _, err := repos.Package.Upsert(ctx, e.EquipmentID, cat.ID, e.Quantity, e.Required); err != nil {
				return err
			}
		}

		items, err := repos.Package.ItemsForCategory(ctx, cat.ID)
		if err != nil {
			return err
		}
		details = &catalog.PackageDetails{
			Category: *cat,
			Items:    items,
			Totals:   packageTotals(items),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Int64("category_id", details.Category.ID).
		Int("items", details.Totals.TotalItems).
		Msg("package created from equipment")
	return details, nil
}

// DuplicatePackage creates a new category and copies every membership of
// the source package into it, in one transaction.
func (s *PackageService) DuplicatePackage(ctx context.Context, sourceID int64, n catalog.NewCategory) (*catalog.PackageDetails, error) {
	var details *catalog.PackageDetails
	err := s.server.DB.WithTx(ctx, func(ctx context.Context, q database.Querier) error {
		repos := repository.NewRepositories(q)

		if _, err := repos.Category.GetByID(ctx, sourceID); err != nil {
			return err
		}
		cat, err := repos.Category.Create(ctx, n)
		if err != nil {
			return err
		}
		if _, err := repos.Package.CopyMemberships(ctx, sourceID, cat.ID); err != nil {
			return err
		}

		items, err := repos.Package.ItemsForCategory(ctx, cat.ID)
		if err != nil {
			return err
		}
		details = &catalog.PackageDetails{
			Category: *cat,
			Items:    items,
			Totals:   packageTotals(items),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Int64("source_category_id", sourceID).
		Int64("category_id", details.Category.ID).
		Msg("package duplicated")
	return details, nil
}

// GetDatabaseStatistics recomputes the catalog-wide statistics.
func (s *PackageService) GetDatabaseStatistics(ctx context.Context) (*catalog.Statistics, error) {
	return s.repos.Stats.Statistics(ctx)
}

func (s *PackageService) detailsFor(ctx context.Context, cats []catalog.Category) ([]catalog.PackageDetails, error) {
	details := make([]catalog.PackageDetails, 0, len(cats))
	for _, cat := range cats {
		items, err := s.repos.Package.ItemsForCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, catalog.PackageDetails{
			Category: cat,
			Items:    items,
			Totals:   packageTotals(items),
		})
	}
	return details, nil
}

// packageTotals derives the composition summary of an item list. Items
// without a price contribute zero to the estimated cost and flag the
// pricing as incomplete instead of failing.
func packageTotals(items []catalog.PackageItem) catalog.PackageTotals {
	totals := catalog.PackageTotals{TotalItems: len(items)}
	for _, item := range items {
		if item.IsRequired {
			totals.RequiredItems++
		} else {
			totals.OptionalItems++
		}
		if item.Equipment.RentalPricePerDay.Valid {
			qty := decimal.NewFromInt(int64(item.QuantityInPackage))
			totals.EstimatedDailyCost = totals.EstimatedDailyCost.Add(
				item.Equipment.RentalPricePerDay.Decimal.Mul(qty))
		} else {
			totals.IncompletePricing = true
		}
	}
	return totals
}
