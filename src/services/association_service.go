package services

import (
	"context"
	"log/slog"

	"blogcms/src/cache"
	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssociationService owns the many-to-many link between posts and tags. Every
// link is stored twice: as a standalone association record and inside the
// post's embedded tags_id set. The two writes are separate store round trips;
// a fault between them leaves the record without the set entry, which the
// cascade paths tolerate.
type AssociationService struct {
	associations repository.AssociationRepository
	posts        repository.PostRepository
	tags         repository.TagRepository
}

func NewAssociationService(
	associations repository.AssociationRepository,
	posts repository.PostRepository,
	tags repository.TagRepository,
) *AssociationService {
	return &AssociationService{
		associations: associations,
		posts:        posts,
		tags:         tags,
	}
}

// Associate links a tag to a post. Both must exist. Re-associating an already
// linked tag inserts a new record but leaves the post's set unchanged
// ($addToSet union semantics).
func (s *AssociationService) Associate(ctx context.Context, postID, tagID primitive.ObjectID) (*models.Association, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.tags.FindByID(ctx, tagID); err != nil {
		return nil, err
	}

	association, err := s.associations.Insert(ctx, postID, tagID)
	if err != nil {
		return nil, err
	}

	if err := s.posts.AddTag(ctx, postID, tagID); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostDetailsKey(postID.Hex()))
	slog.Info("tag associated", "post_id", postID.Hex(), "tag_id", tagID.Hex())
	return association, nil
}

// Disassociate removes the link identified by associationID: pulls the tag
// from the post's set, then deletes the association record.
func (s *AssociationService) Disassociate(ctx context.Context, associationID primitive.ObjectID) error {
	association, err := s.associations.FindByID(ctx, associationID)
	if err != nil {
		return err
	}

	if err := s.posts.PullTag(ctx, association.PostID, association.TagID); err != nil {
		return err
	}

	if err := s.associations.Delete(ctx, associationID); err != nil {
		return err
	}

	cache.Invalidate(ctx, cache.PostDetailsKey(association.PostID.Hex()))
	slog.Info("tag disassociated",
		"association_id", associationID.Hex(),
		"post_id", association.PostID.Hex(),
		"tag_id", association.TagID.Hex(),
	)
	return nil
}

// List returns a page of association records.
func (s *AssociationService) List(ctx context.Context, skip, limit int64) (*models.PaginatedAssociations, error) {
	total, err := s.associations.Count(ctx)
	if err != nil {
		return nil, err
	}
	data, err := s.associations.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return &models.PaginatedAssociations{Total: total, Skip: skip, Limit: limit, Data: data}, nil
}
