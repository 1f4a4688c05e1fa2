package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/server"
	"github.com/gearshed/gearshed/internal/service"
)

// EquipmentHandler serves the equipment inventory endpoints.
type EquipmentHandler struct {
	Handler
	services *service.Services
}

// NewEquipmentHandler constructs an EquipmentHandler.
func NewEquipmentHandler(s *server.Server, services *service.Services) *EquipmentHandler {
	return &EquipmentHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// EmptyRequest is the payload for endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error { return nil }

// CreateEquipmentRequest is the payload for adding an item to the
// inventory. Enum membership and value positivity are enforced again by
// the domain validation, so unknown types fail before any SQL runs.
type CreateEquipmentRequest struct {
	Name               string           `json:"name" validate:"required,max=255"`
	Description        string           `json:"description" validate:"required"`
	EquipmentType      string           `json:"equipment_type" validate:"required"`
	Brand              *string          `json:"brand"`
	Model              *string          `json:"model"`
	PowerRating        *string          `json:"power_rating"`
	Dimensions         *string          `json:"dimensions"`
	Weight             *float64         `json:"weight" validate:"omitempty,gt=0"`
	RentalPricePerDay  *decimal.Decimal `json:"rental_price_per_day"`
	AvailabilityStatus string           `json:"availability_status"`
}

func (r *CreateEquipmentRequest) Validate() error { return validate.Struct(r) }

// Create handles POST /equipment.
func (h *EquipmentHandler) Create(c echo.Context, req *CreateEquipmentRequest) (*catalog.Equipment, error) {
	n := catalog.NewEquipment{
		Name:               req.Name,
		Description:        req.Description,
		EquipmentType:      catalog.EquipmentType(req.EquipmentType),
		Brand:              req.Brand,
		Model:              req.Model,
		PowerRating:        req.PowerRating,
		Dimensions:         req.Dimensions,
		Weight:             req.Weight,
		AvailabilityStatus: catalog.AvailabilityStatus(req.AvailabilityStatus),
	}
	if req.RentalPricePerDay != nil {
		n.RentalPricePerDay = decimal.NullDecimal{Decimal: *req.RentalPricePerDay, Valid: true}
	}
	return h.services.Equipment.Create(c.Request().Context(), n)
}

// EquipmentIDRequest addresses one equipment item by path parameter.
type EquipmentIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *EquipmentIDRequest) Validate() error { return validate.Struct(r) }

// GetByID handles GET /equipment/:id.
func (h *EquipmentHandler) GetByID(c echo.Context, req *EquipmentIDRequest) (*catalog.Equipment, error) {
	return h.services.Equipment.GetByID(c.Request().Context(), req.ID)
}

// GetAll handles GET /equipment.
func (h *EquipmentHandler) GetAll(c echo.Context, _ *EmptyRequest) ([]catalog.Equipment, error) {
	return h.services.Equipment.GetAll(c.Request().Context())
}

// GetAvailable handles GET /equipment/available.
func (h *EquipmentHandler) GetAvailable(c echo.Context, _ *EmptyRequest) ([]catalog.Equipment, error) {
	return h.services.Equipment.GetAvailable(c.Request().Context())
}

// EquipmentTypeRequest filters the inventory by equipment type.
type EquipmentTypeRequest struct {
	Type string `param:"type" validate:"required"`
}

func (r *EquipmentTypeRequest) Validate() error { return validate.Struct(r) }

// GetByType handles GET /equipment/type/:type.
func (h *EquipmentHandler) GetByType(c echo.Context, req *EquipmentTypeRequest) ([]catalog.Equipment, error) {
	return h.services.Equipment.GetByType(c.Request().Context(), catalog.EquipmentType(req.Type))
}

// EquipmentStatusRequest filters the inventory by availability status.
type EquipmentStatusRequest struct {
	Status string `param:"status" validate:"required"`
}

func (r *EquipmentStatusRequest) Validate() error { return validate.Struct(r) }

// GetByStatus handles GET /equipment/status/:status.
func (h *EquipmentHandler) GetByStatus(c echo.Context, req *EquipmentStatusRequest) ([]catalog.Equipment, error) {
	return h.services.Equipment.GetByAvailability(c.Request().Context(), catalog.AvailabilityStatus(req.Status))
}

// SearchRequest carries a free-text query. A blank query is allowed and
// yields an empty result rather than an error.
type SearchRequest struct {
	Query string `query:"q"`
}

func (r *SearchRequest) Validate() error { return nil }

// Search handles GET /equipment/search.
func (h *EquipmentHandler) Search(c echo.Context, req *SearchRequest) ([]catalog.Equipment, error) {
	return h.services.Equipment.Search(c.Request().Context(), req.Query)
}

// UpdateEquipmentRequest is the partial-update payload. Absent fields
// keep their stored values.
type UpdateEquipmentRequest struct {
	ID                 int64            `param:"id" validate:"required,gt=0"`
	Name               *string          `json:"name" validate:"omitempty,max=255"`
	Description        *string          `json:"description"`
	EquipmentType      *string          `json:"equipment_type"`
	Brand              *string          `json:"brand"`
	Model              *string          `json:"model"`
	PowerRating        *string          `json:"power_rating"`
	Dimensions         *string          `json:"dimensions"`
	Weight             *float64         `json:"weight" validate:"omitempty,gt=0"`
	RentalPricePerDay  *decimal.Decimal `json:"rental_price_per_day"`
	AvailabilityStatus *string          `json:"availability_status"`
}

func (r *UpdateEquipmentRequest) Validate() error { return validate.Struct(r) }

// Update handles PATCH /equipment/:id.
func (h *EquipmentHandler) Update(c echo.Context, req *UpdateEquipmentRequest) (*catalog.Equipment, error) {
	u := catalog.EquipmentUpdate{
		Name:              req.Name,
		Description:       req.Description,
		Weight:            req.Weight,
		RentalPricePerDay: req.RentalPricePerDay,
	}
	if req.EquipmentType != nil {
		t := catalog.EquipmentType(*req.EquipmentType)
		u.EquipmentType = &t
	}
	if req.AvailabilityStatus != nil {
		s := catalog.AvailabilityStatus(*req.AvailabilityStatus)
		u.AvailabilityStatus = &s
	}
	if req.Brand != nil {
		u.Brand = &req.Brand
	}
	if req.Model != nil {
		u.Model = &req.Model
	}
	if req.PowerRating != nil {
		u.PowerRating = &req.PowerRating
	}
	if req.Dimensions != nil {
		u.Dimensions = &req.Dimensions
	}
	return h.services.Equipment.Update(c.Request().Context(), req.ID, u)
}

// Delete handles DELETE /equipment/:id.
func (h *EquipmentHandler) Delete(c echo.Context, req *EquipmentIDRequest) error {
	return h.services.Equipment.Delete(c.Request().Context(), req.ID)
}

// GetPackages handles GET /equipment/:id/packages.
func (h *EquipmentHandler) GetPackages(c echo.Context, req *EquipmentIDRequest) ([]catalog.EquipmentPackage, error) {
	return h.services.Package.GetEquipmentPackages(c.Request().Context(), req.ID)
}
