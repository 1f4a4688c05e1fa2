package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/server"
	"github.com/gearshed/gearshed/internal/service"
)

// PackageHandler serves the package-composition endpoints: memberships,
// derived package views and the catalog statistics.
type PackageHandler struct {
	Handler
	services *service.Services
}

// NewPackageHandler constructs a PackageHandler.
func NewPackageHandler(s *server.Server, services *service.Services) *PackageHandler {
	return &PackageHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// MembershipRequest addresses one (category, equipment) pair and carries
// the membership terms. Required defaults to true when omitted.
type MembershipRequest struct {
	CategoryID  int64 `param:"id" validate:"required,gt=0"`
	EquipmentID int64 `param:"equipmentID" validate:"required,gt=0"`
	Quantity    int   `json:"quantity" validate:"omitempty,gt=0"`
	Required    *bool `json:"is_required"`
}

func (r *MembershipRequest) Validate() error { return validate.Struct(r) }

// AddEquipment handles POST /packages/:id/equipment/:equipmentID.
// Adding a pair that already exists overwrites its terms.
func (h *PackageHandler) AddEquipment(c echo.Context, req *MembershipRequest) (*catalog.Membership, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	required := true
	if req.Required != nil {
		required = *req.Required
	}
	return h.services.Package.AddEquipmentToPackage(
		c.Request().Context(), req.EquipmentID, req.CategoryID, quantity, required)
}

// PairRequest addresses one (category, equipment) pair with no body.
type PairRequest struct {
	CategoryID  int64 `param:"id" validate:"required,gt=0"`
	EquipmentID int64 `param:"equipmentID" validate:"required,gt=0"`
}

func (r *PairRequest) Validate() error { return validate.Struct(r) }

// RemoveEquipmentResponse reports whether a membership row was removed.
type RemoveEquipmentResponse struct {
	Removed bool `json:"removed"`
}

// RemoveEquipment handles DELETE /packages/:id/equipment/:equipmentID.
// Removing an absent pair succeeds with removed=false.
func (h *PackageHandler) RemoveEquipment(c echo.Context, req *PairRequest) (*RemoveEquipmentResponse, error) {
	removed, err := h.services.Package.RemoveEquipmentFromPackage(
		c.Request().Context(), req.EquipmentID, req.CategoryID)
	if err != nil {
		return nil, err
	}
	return &RemoveEquipmentResponse{Removed: removed}, nil
}

// UpdateQuantityRequest changes the quantity of an existing membership.
type UpdateQuantityRequest struct {
	CategoryID  int64 `param:"id" validate:"required,gt=0"`
	EquipmentID int64 `param:"equipmentID" validate:"required,gt=0"`
	Quantity    int   `json:"quantity" validate:"required,gt=0"`
}

func (r *UpdateQuantityRequest) Validate() error { return validate.Struct(r) }

// UpdateQuantity handles PATCH /packages/:id/equipment/:equipmentID/quantity.
func (h *PackageHandler) UpdateQuantity(c echo.Context, req *UpdateQuantityRequest) error {
	return h.services.Package.UpdatePackageQuantity(
		c.Request().Context(), req.EquipmentID, req.CategoryID, req.Quantity)
}

// UpdateRequirementRequest flips a membership between required and
// optional.
type UpdateRequirementRequest struct {
	CategoryID  int64 `param:"id" validate:"required,gt=0"`
	EquipmentID int64 `param:"equipmentID" validate:"required,gt=0"`
	Required    *bool `json:"is_required" validate:"required"`
}

func (r *UpdateRequirementRequest) Validate() error { return validate.Struct(r) }

// UpdateRequirement handles PATCH /packages/:id/equipment/:equipmentID/requirement.
func (h *PackageHandler) UpdateRequirement(c echo.Context, req *UpdateRequirementRequest) error {
	return h.services.Package.UpdatePackageRequirement(
		c.Request().Context(), req.EquipmentID, req.CategoryID, *req.Required)
}

// PackageIDRequest addresses one package by path parameter.
type PackageIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *PackageIDRequest) Validate() error { return validate.Struct(r) }

// GetDetails handles GET /packages/:id.
func (h *PackageHandler) GetDetails(c echo.Context, req *PackageIDRequest) (*catalog.PackageDetails, error) {
	return h.services.Package.GetPackageDetails(c.Request().Context(), req.ID)
}

// PackageFilterRequest filters packages by audience and event size. Both
// are required and matched exactly.
type PackageFilterRequest struct {
	Audience string `query:"audience" validate:"required"`
	Size     string `query:"size" validate:"required"`
}

func (r *PackageFilterRequest) Validate() error { return validate.Struct(r) }

// GetByAudienceAndSize handles GET /packages.
func (h *PackageHandler) GetByAudienceAndSize(c echo.Context, req *PackageFilterRequest) ([]catalog.PackageDetails, error) {
	return h.services.Package.GetPackagesByAudienceAndSize(
		c.Request().Context(), req.Audience, catalog.EventSize(req.Size))
}

// Search handles GET /packages/search.
func (h *PackageHandler) Search(c echo.Context, req *SearchRequest) ([]catalog.PackageDetails, error) {
	return h.services.Package.SearchPackages(c.Request().Context(), req.Query)
}

// PackageEntryRequest is one line of a bulk package creation.
type PackageEntryRequest struct {
	EquipmentID int64 `json:"equipment_id" validate:"required,gt=0"`
	Quantity    int   `json:"quantity" validate:"required,gt=0"`
	Required    *bool `json:"is_required"`
}

// CreatePackageRequest creates a category together with all its
// memberships in one shot.
type CreatePackageRequest struct {
	Name             string                `json:"name" validate:"required,max=255"`
	Description      *string               `json:"description"`
	TargetAudience   *string               `json:"target_audience"`
	TypicalEventSize string                `json:"typical_event_size" validate:"required"`
	Items            []PackageEntryRequest `json:"items" validate:"required,min=1,dive"`
}

func (r *CreatePackageRequest) Validate() error { return validate.Struct(r) }

// Create handles POST /packages. The category and every membership are
// written in one transaction; any failure rolls the whole package back.
func (h *PackageHandler) Create(c echo.Context, req *CreatePackageRequest) (*catalog.PackageDetails, error) {
	entries := make([]catalog.PackageEntry, len(req.Items))
	for i, item := range req.Items {
		required := true
		if item.Required != nil {
			required = *item.Required
		}
		entries[i] = catalog.PackageEntry{
			EquipmentID: item.EquipmentID,
			Quantity:    item.Quantity,
			Required:    required,
		}
	}
	return h.services.Package.CreatePackageFromEquipment(c.Request().Context(), catalog.NewCategory{
		Name:             req.Name,
		Description:      req.Description,
		TargetAudience:   req.TargetAudience,
		TypicalEventSize: catalog.EventSize(req.TypicalEventSize),
	}, entries)
}

// DuplicatePackageRequest copies an existing package under a new name.
type DuplicatePackageRequest struct {
	ID               int64   `param:"id" validate:"required,gt=0"`
	Name             string  `json:"name" validate:"required,max=255"`
	Description      *string `json:"description"`
	TargetAudience   *string `json:"target_audience"`
	TypicalEventSize string  `json:"typical_event_size" validate:"required"`
}

func (r *DuplicatePackageRequest) Validate() error { return validate.Struct(r) }

// Duplicate handles POST /packages/:id/duplicate.
func (h *PackageHandler) Duplicate(c echo.Context, req *DuplicatePackageRequest) (*catalog.PackageDetails, error) {
	return h.services.Package.DuplicatePackage(c.Request().Context(), req.ID, catalog.NewCategory{
		Name:             req.Name,
		Description:      req.Description,
		TargetAudience:   req.TargetAudience,
		TypicalEventSize: catalog.EventSize(req.TypicalEventSize),
	})
}

// GetStatistics handles GET /statistics.
func (h *PackageHandler) GetStatistics(c echo.Context, _ *EmptyRequest) (*catalog.Statistics, error) {
	return h.services.Package.GetDatabaseStatistics(c.Request().Context())
}
