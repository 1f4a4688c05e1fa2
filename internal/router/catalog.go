package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gearshed/gearshed/internal/handler"
)

// registerCatalogRoutes maps the equipment, category and package
// endpoints onto their handlers through the generic pipeline.
func registerCatalogRoutes(r *echo.Echo, h *handler.Handlers) {
	equipment := r.Group("/equipment")
	equipment.POST("", handler.Handle(h.Equipment.Handler, h.Equipment.Create, http.StatusCreated))
	equipment.GET("", handler.Handle(h.Equipment.Handler, h.Equipment.GetAll, http.StatusOK))
	equipment.GET("/available", handler.Handle(h.Equipment.Handler, h.Equipment.GetAvailable, http.StatusOK))
	equipment.GET("/search", handler.Handle(h.Equipment.Handler, h.Equipment.Search, http.StatusOK))
	equipment.GET("/type/:type", handler.Handle(h.Equipment.Handler, h.Equipment.GetByType, http.StatusOK))
	equipment.GET("/status/:status", handler.Handle(h.Equipment.Handler, h.Equipment.GetByStatus, http.StatusOK))
	equipment.GET("/:id", handler.Handle(h.Equipment.Handler, h.Equipment.GetByID, http.StatusOK))
	equipment.GET("/:id/packages", handler.Handle(h.Equipment.Handler, h.Equipment.GetPackages, http.StatusOK))
	equipment.PATCH("/:id", handler.Handle(h.Equipment.Handler, h.Equipment.Update, http.StatusOK))
	equipment.DELETE("/:id", handler.HandleNoContent(h.Equipment.Handler, h.Equipment.Delete, http.StatusNoContent))

	categories := r.Group("/categories")
	categories.POST("", handler.Handle(h.Category.Handler, h.Category.Create, http.StatusCreated))
	categories.GET("", handler.Handle(h.Category.Handler, h.Category.GetAll, http.StatusOK))
	categories.GET("/search", handler.Handle(h.Category.Handler, h.Category.Search, http.StatusOK))
	categories.GET("/audience/:audience", handler.Handle(h.Category.Handler, h.Category.GetByAudience, http.StatusOK))
	categories.GET("/size/:size", handler.Handle(h.Category.Handler, h.Category.GetByEventSize, http.StatusOK))
	categories.GET("/:id", handler.Handle(h.Category.Handler, h.Category.GetByID, http.StatusOK))
	categories.PATCH("/:id", handler.Handle(h.Category.Handler, h.Category.Update, http.StatusOK))
	categories.DELETE("/:id", handler.HandleNoContent(h.Category.Handler, h.Category.Delete, http.StatusNoContent))

	packages := r.Group("/packages")
	packages.POST("", handler.Handle(h.Package.Handler, h.Package.Create, http.StatusCreated))
	packages.GET("", handler.Handle(h.Package.Handler, h.Package.GetByAudienceAndSize, http.StatusOK))
	packages.GET("/search", handler.Handle(h.Package.Handler, h.Package.Search, http.StatusOK))
	packages.GET("/:id", handler.Handle(h.Package.Handler, h.Package.GetDetails, http.StatusOK))
	packages.POST("/:id/duplicate", handler.Handle(h.Package.Handler, h.Package.Duplicate, http.StatusCreated))
	packages.POST("/:id/equipment/:equipmentID", handler.Handle(h.Package.Handler, h.Package.AddEquipment, http.StatusOK))
	packages.DELETE("/:id/equipment/:equipmentID", handler.Handle(h.Package.Handler, h.Package.RemoveEquipment, http.StatusOK))
	packages.PATCH("/:id/equipment/:equipmentID/quantity", handler.HandleNoContent(h.Package.Handler, h.Package.UpdateQuantity, http.StatusNoContent))
	packages.PATCH("/:id/equipment/:equipmentID/requirement", handler.HandleNoContent(h.Package.Handler, h.Package.UpdateRequirement, http.StatusNoContent))

	r.GET("/statistics", handler.Handle(h.Package.Handler, h.Package.GetStatistics, http.StatusOK))
}
