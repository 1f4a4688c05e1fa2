package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/gearshed/gearshed/internal/server"
	"github.com/gearshed/gearshed/internal/service"
)

// validate runs the struct-tag rules on request payloads. One instance is
// shared: it caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health    *HealthHandler
	Equipment *EquipmentHandler
	Category  *CategoryHandler
	Package   *PackageHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		Equipment: NewEquipmentHandler(s, services),
		Category:  NewCategoryHandler(s, services),
		Package:   NewPackageHandler(s, services),
	}
}
