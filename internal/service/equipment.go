package service

import (
	"context"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/repository"
	"github.com/gearshed/gearshed/internal/server"
)

// EquipmentService exposes the equipment inventory operations. The
// repository already enforces the value constraints, so the service is a
// thin pass-through that exists to keep the handler layer off raw SQL.
type EquipmentService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewEquipmentService constructs the equipment service.
func NewEquipmentService(s *server.Server, repos *repository.Repositories) *EquipmentService {
	return &EquipmentService{server: s, repos: repos}
}

func (s *EquipmentService) Create(ctx context.Context, n catalog.NewEquipment) (*catalog.Equipment, error) {
	item, err := s.repos.Equipment.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	s.server.Logger.Info().
		Int64("equipment_id", item.ID).
		Str("equipment_type", string(item.EquipmentType)).
		Msg("equipment created")
	return item, nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id int64) (*catalog.Equipment, error) {
	return s.repos.Equipment.GetByID(ctx, id)
}

func (s *EquipmentService) GetAll(ctx context.Context) ([]catalog.Equipment, error) {
	return s.repos.Equipment.GetAll(ctx)
}

func (s *EquipmentService) GetByType(ctx context.Context, t catalog.EquipmentType) ([]catalog.Equipment, error) {
	return s.repos.Equipment.GetByType(ctx, t)
}

func (s *EquipmentService) GetAvailable(ctx context.Context) ([]catalog.Equipment, error) {
	return s.repos.Equipment.GetAvailable(ctx)
}

func (s *EquipmentService) GetByAvailability(ctx context.Context, status catalog.AvailabilityStatus) ([]catalog.Equipment, error) {
	return s.repos.Equipment.GetByAvailability(ctx, status)
}

func (s *EquipmentService) Search(ctx context.Context, query string) ([]catalog.Equipment, error) {
	return s.repos.Equipment.Search(ctx, query)
}

func (s *EquipmentService) Update(ctx context.Context, id int64, u catalog.EquipmentUpdate) (*catalog.Equipment, error) {
	return s.repos.Equipment.Update(ctx, id, u)
}

func (s *EquipmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repos.Equipment.Delete(ctx, id); err != nil {
		return err
	}
	s.server.Logger.Info().Int64("equipment_id", id).Msg("equipment deleted")
	return nil
}
