package service

import (
	"context"

	"github.com/gearshed/gearshed/internal/catalog"
	"github.com/gearshed/gearshed/internal/repository"
	"github.com/gearshed/gearshed/internal/server"
)

// CategoryService exposes the package-category operations.
type CategoryService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewCategoryService constructs the category service.
func NewCategoryService(s *server.Server, repos *repository.Repositories) *CategoryService {
	return &CategoryService{server: s, repos: repos}
}

func (s *CategoryService) Create(ctx context.Context, n catalog.NewCategory) (*catalog.Category, error) {
	cat, err := s.repos.Category.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	s.server.Logger.Info().
		Int64("category_id", cat.ID).
		Str("name", cat.Name).
		Msg("category created")
	return cat, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*catalog.Category, error) {
	return s.repos.Category.GetByID(ctx, id)
}

func (s *CategoryService) GetAll(ctx context.Context) ([]catalog.Category, error) {
	return s.repos.Category.GetAll(ctx)
}

func (s *CategoryService) GetByAudience(ctx context.Context, audience string) ([]catalog.Category, error) {
	return s.repos.Category.GetByAudience(ctx, audience)
}

func (s *CategoryService) GetByEventSize(ctx context.Context, size catalog.EventSize) ([]catalog.Category, error) {
	return s.repos.Category.GetByEventSize(ctx, size)
}

func (s *CategoryService) Search(ctx context.Context, query string) ([]catalog.Category, error) {
	return s.repos.Category.Search(ctx, query)
}

func (s *CategoryService) Update(ctx context.Context, id int64, u catalog.CategoryUpdate) (*catalog.Category, error) {
	return s.repos.Category.Update(ctx, id, u)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repos.Category.Delete(ctx, id); err != nil {
		return err
	}
	s.server.Logger.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}
