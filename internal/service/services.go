package service

import (
	"github.com/gearshed/gearshed/internal/repository"
	"github.com/gearshed/gearshed/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Equipment *EquipmentService
	Category  *CategoryService
	Package   *PackageService
}

// NewServices constructs the service container over the application
// container and the repository set.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Equipment: NewEquipmentService(s, repos),
		Category:  NewCategoryService(s, repos),
		Package:   NewPackageService(s, repos),
	}
}
