package services

import (
	"context"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService handles category CRUD. Deletion goes through the cascade
// service.
type CategoryService struct {
	categories repository.CategoryRepository
}

func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	return s.categories.Insert(ctx, in)
}

func (s *CategoryService) List(ctx context.Context, skip, limit int64) (*models.PaginatedCategories, error) {
	total, err := s.categories.Count(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.categories.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &models.PaginatedCategories{Total: total, Skip: skip, Limit: limit, Data: data}, nil
}

func (s *CategoryService) Count(ctx context.Context) (int64, error) {
	return s.categories.Count(ctx)
}

// GetByIdentifier looks up a category by id when the identifier parses as
// one, otherwise by exact name (case-insensitive).
func (s *CategoryService) GetByIdentifier(ctx context.Context, identifier string) (*models.Category, error) {
	if lib.IsID(identifier) {
		id, err := lib.ParseID(identifier)
		if err != nil {
			return nil, err
		}
		return s.categories.FindByID(ctx, id)
	}
	return s.categories.FindByName(ctx, identifier)
}

func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, in models.CategoryInput) (*models.Category, error) {
	return s.categories.Update(ctx, id, in)
}
