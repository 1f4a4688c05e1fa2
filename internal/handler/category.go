package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/server"
	"github.com/gearshed/gearshed/internal/service"
)

// CategoryHandler serves the package-category endpoints.
type CategoryHandler struct {
	Handler
	services *service.Services
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(s *server.Server, services *service.Services) *CategoryHandler {
	return &CategoryHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

// CreateCategoryRequest is the payload for creating a package category.
type CreateCategoryRequest struct {
	Name             string  `json:"name" validate:"required,max=255"`
	Description      *string `json:"description"`
	TargetAudience   *string `json:"target_audience"`
	TypicalEventSize string  `json:"typical_event_size" validate:"required"`
}

func (r *CreateCategoryRequest) Validate() error { return validate.Struct(r) }

// Create handles POST /categories.
func (h *CategoryHandler) Create(c echo.Context, req *CreateCategoryRequest) (*catalog.Category, error) {
	return h.services.Category.Create(c.Request().Context(), catalog.NewCategory{
		Name:             req.Name,
		Description:      req.Description,
		TargetAudience:   req.TargetAudience,
		TypicalEventSize: catalog.EventSize(req.TypicalEventSize),
	})
}

// CategoryIDRequest addresses one category by path parameter.
type CategoryIDRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *CategoryIDRequest) Validate() error { return validate.Struct(r) }

// GetByID handles GET /categories/:id.
func (h *CategoryHandler) GetByID(c echo.Context, req *CategoryIDRequest) (*catalog.Category, error) {
	return h.services.Category.GetByID(c.Request().Context(), req.ID)
}

// GetAll handles GET /categories.
func (h *CategoryHandler) GetAll(c echo.Context, _ *EmptyRequest) ([]catalog.Category, error) {
	return h.services.Category.GetAll(c.Request().Context())
}

// CategoryAudienceRequest filters categories by target audience. The
// match is exact and case-sensitive.
type CategoryAudienceRequest struct {
	Audience string `param:"audience" validate:"required"`
}

func (r *CategoryAudienceRequest) Validate() error { return validate.Struct(r) }

// GetByAudience handles GET /categories/audience/:audience.
func (h *CategoryHandler) GetByAudience(c echo.Context, req *CategoryAudienceRequest) ([]catalog.Category, error) {
	return h.services.Category.GetByAudience(c.Request().Context(), req.Audience)
}

// CategorySizeRequest filters categories by typical event size.
type CategorySizeRequest struct {
	Size string `param:"size" validate:"required"`
}

func (r *CategorySizeRequest) Validate() error { return validate.Struct(r) }

// GetByEventSize handles GET /categories/size/:size.
func (h *CategoryHandler) GetByEventSize(c echo.Context, req *CategorySizeRequest) ([]catalog.Category, error) {
	return h.services.Category.GetByEventSize(c.Request().Context(), catalog.EventSize(req.Size))
}

// Search handles GET /categories/search.
func (h *CategoryHandler) Search(c echo.Context, req *SearchRequest) ([]catalog.Category, error) {
	return h.services.Category.Search(c.Request().Context(), req.Query)
}

// UpdateCategoryRequest is the partial-update payload for categories.
type UpdateCategoryRequest struct {
	ID               int64   `param:"id" validate:"required,gt=0"`
	Name             *string `json:"name" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	TargetAudience   *string `json:"target_audience"`
	TypicalEventSize *string `json:"typical_event_size"`
}

func (r *UpdateCategoryRequest) Validate() error { return validate.Struct(r) }

// Update handles PATCH /categories/:id.
func (h *CategoryHandler) Update(c echo.Context, req *UpdateCategoryRequest) (*catalog.Category, error) {
	u := catalog.CategoryUpdate{
		Name: req.Name,
	}
	if req.Description != nil {
		u.Description = &req.Description
	}
	if req.TargetAudience != nil {
		u.TargetAudience = &req.TargetAudience
	}
	if req.TypicalEventSize != nil {
		s := catalog.EventSize(*req.TypicalEventSize)
		u.TypicalEventSize = &s
	}
	return h.services.Category.Update(c.Request().Context(), req.ID, u)
}

// Delete handles DELETE /categories/:id.
func (h *CategoryHandler) Delete(c echo.Context, req *CategoryIDRequest) error {
	return h.services.Category.Delete(c.Request().Context(), req.ID)
}
