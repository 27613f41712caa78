package services

import (
	"context"
	"time"

	"blogcms/src/cache"
	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const postDetailsTTL = 30 * time.Second

// PostService handles post CRUD and the composed full-details view.
type PostService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	comments   repository.CommentRepository
}

func NewPostService(
	posts repository.PostRepository,
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	comments repository.CommentRepository,
) *PostService {
	return &PostService{
		posts:      posts,
		categories: categories,
		tags:       tags,
		comments:   comments,
	}
}

// validateRefs checks that the category (when set) and every tag referenced
// by the input exist. Referential integrity is enforced here, at write time,
// because the store will not enforce it.
func (s *PostService) validateRefs(ctx context.Context, in models.PostInput) error {
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return err
		}
	}
	for _, tagID := range in.TagsID {
		if _, err := s.tags.FindByID(ctx, tagID); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostService) Create(ctx context.Context, in models.PostInput) (*models.Post, error) {
	if err := s.validateRefs(ctx, in); err != nil {
		return nil, err
	}
	post, err := s.posts.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.DashboardStatsKey)
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id primitive.ObjectID, in models.PostInput) (*models.Post, error) {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.validateRefs(ctx, in); err != nil {
		return nil, err
	}
	post, err := s.posts.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.DashboardStatsKey, cache.PostDetailsKey(id.Hex()))
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, opts repository.PostListOptions) (*models.PaginatedPosts, error) {
	total, err := s.posts.Count(ctx, opts)
	if err != nil {
		return nil, err
	}
	data, err := s.posts.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &models.PaginatedPosts{Total: total, Skip: opts.Skip, Limit: opts.Limit, Data: data}, nil
}

func (s *PostService) SearchByTitle(ctx context.Context, title string) ([]models.Post, error) {
	return s.posts.SearchByTitle(ctx, title)
}

// ByTag lists the posts carrying tagID. The tag must exist.
func (s *PostService) ByTag(ctx context.Context, tagID primitive.ObjectID) ([]models.Post, error) {
	if _, err := s.tags.FindByID(ctx, tagID); err != nil {
		return nil, err
	}
	return s.posts.FindByTag(ctx, tagID)
}

// ByCategory lists the posts of categoryID. The category must exist.
func (s *PostService) ByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Post, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.posts.FindByCategory(ctx, categoryID)
}

// FullDetails composes the post with its category, tags and comments in one
// view. The category is nil when unset or since deleted; tag ids that no
// longer resolve are omitted. There is no join primitive, so each relation is
// its own read against the shared store.
func (s *PostService) FullDetails(ctx context.Context, id primitive.ObjectID) (*models.PostDetails, error) {
	var details models.PostDetails
	err := cache.CacheAside(ctx, cache.PostDetailsKey(id.Hex()), &details, postDetailsTTL, func() error {
		post, err := s.posts.FindByID(ctx, id)
		if err != nil {
			return err
		}

		var category *models.Category
		if post.CategoryID != nil {
			category, err = s.categories.FindByID(ctx, *post.CategoryID)
			if err != nil {
				if !models.HasCode(err, models.CodeNotFound) {
					return err
				}
				category = nil
			}
		}

		tags, err := s.tags.FindByIDs(ctx, post.TagsID)
		if err != nil {
			return err
		}

		comments, err := s.comments.FindByPost(ctx, id)
		if err != nil {
			return err
		}

		details = models.PostDetails{
			Post:     *post,
			Category: category,
			Tags:     tags,
			Comments: comments,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &details, nil
}
