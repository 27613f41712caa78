package services

import (
	"context"
	"log/slog"

	"blogcms/src/cache"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CascadeService executes the ordered multi-collection cleanup triggered by
// deleting a category, tag, post or user. The store has no cross-collection
// transactions, so each sequence is a fixed ordering of independent writes:
// a fault mid-sequence leaves the store in the post-step state with no
// rollback. Step order is chosen so that a partial run never leaves a
// dangling reference to a still-deleted entity worse than the full run would.
type CascadeService struct {
	categories   repository.CategoryRepository
	tags         repository.TagRepository
	posts        repository.PostRepository
	comments     repository.CommentRepository
	users        repository.UserRepository
	likes        repository.LikeRepository
	associations repository.AssociationRepository
}

func NewCascadeService(
	categories repository.CategoryRepository,
	tags repository.TagRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
	users repository.UserRepository,
	likes repository.LikeRepository,
	associations repository.AssociationRepository,
) *CascadeService {
	return &CascadeService{
		categories:   categories,
		tags:         tags,
		posts:        posts,
		comments:     comments,
		users:        users,
		likes:        likes,
		associations: associations,
	}
}

// DeleteCategory nulls category_id on every post of the category, then
// deletes the category itself. Posts are never deleted. The de-referencing
// step runs first, so posts are already detached even if the final delete
// fails.
func (s *CascadeService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	cleared, err := s.posts.ClearCategory(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, cache.DashboardStatsKey)
	slog.Info("category deleted", "category_id", id.Hex(), "posts_detached", cleared)
	return nil
}

// DeleteTag deletes the tag, pulls it from every post's tags_id set and
// removes every association record referencing it.
func (s *CascadeService) DeleteTag(ctx context.Context, id primitive.ObjectID) error {
	if err := s.tags.Delete(ctx, id); err != nil {
		return err
	}

	updated, err := s.posts.PullTagFromAll(ctx, id)
	if err != nil {
		return err
	}

	removed, err := s.associations.DeleteByTag(ctx, id)
	if err != nil {
		return err
	}

	slog.Info("tag deleted", "tag_id", id.Hex(), "posts_updated", updated, "associations_removed", removed)
	return nil
}

// DeletePost removes the post's comments, associations and like records,
// then the post itself.
func (s *CascadeService) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		return err
	}

	comments, err := s.comments.DeleteByPost(ctx, id)
	if err != nil {
		return err
	}

	associations, err := s.associations.DeleteByPost(ctx, id)
	if err != nil {
		return err
	}

	likes, err := s.likes.DeleteByPost(ctx, id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, cache.DashboardStatsKey, cache.PostDetailsKey(id.Hex()))
	slog.Info("post deleted",
		"post_id", id.Hex(),
		"comments_removed", comments,
		"associations_removed", associations,
		"likes_removed", likes,
	)
	return nil
}

// DeleteUser deletes the user, then their comments, then their like records.
// Each removed like decrements the liked post's counter so the cached
// aggregate stays in step with the like collection.
func (s *CascadeService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	comments, err := s.comments.DeleteByUser(ctx, id)
	if err != nil {
		return err
	}

	userLikes, err := s.likes.FindByUser(ctx, id)
	if err != nil {
		return err
	}
	removed, err := s.likes.DeleteByUser(ctx, id)
	if err != nil {
		return err
	}
	for _, like := range userLikes {
		if _, err := s.posts.IncLikes(ctx, like.PostID, -1); err != nil {
			// The liked post may itself be gone; nothing left to decrement.
			continue
		}
		cache.Invalidate(ctx, cache.PostDetailsKey(like.PostID.Hex()))
	}

	cache.Invalidate(ctx, cache.DashboardStatsKey)
	slog.Info("user deleted", "user_id", id.Hex(), "comments_removed", comments, "likes_removed", removed)
	return nil
}
