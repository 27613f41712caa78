package services

import (
	"context"

	"blogcms/src/lib"
	"blogcms/src/models"
	"blogcms/src/repository"
)

// TagService handles tag creation and lookup. Deletion goes through the
// cascade service.
type TagService struct {
	tags repository.TagRepository
}

func NewTagService(tags repository.TagRepository) *TagService {
	return &TagService{tags: tags}
}

// Create inserts a new tag. Tag names are unique case-insensitively; a
// conflicting name fails with already_exists.
func (s *TagService) Create(ctx context.Context, in models.TagInput) (*models.Tag, error) {
	existing, err := s.tags.FindByName(ctx, in.Name)
	if err != nil && !models.HasCode(err, models.CodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewAlreadyExistsError("a tag with this name already exists")
	}
	return s.tags.Insert(ctx, in)
}

func (s *TagService) List(ctx context.Context, skip, limit int64) (*models.PaginatedTags, error) {
	total, err := s.tags.Count(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.tags.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &models.PaginatedTags{Total: total, Skip: skip, Limit: limit, Data: data}, nil
}

func (s *TagService) Count(ctx context.Context) (int64, error) {
	return s.tags.Count(ctx)
}

// GetByIdentifier looks up a tag by id when the identifier parses as one,
// otherwise by exact name (case-insensitive).
func (s *TagService) GetByIdentifier(ctx context.Context, identifier string) (*models.Tag, error) {
	if lib.IsID(identifier) {
		id, err := lib.ParseID(identifier)
		if err != nil {
			return nil, err
		}
		return s.tags.FindByID(ctx, id)
	}
	return s.tags.FindByName(ctx, identifier)
}
