package services

import (
	"context"
	"log/slog"

	"blogcms/src/cache"
	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeService owns the one-like-per-(post,user) invariant and the post's
// denormalized likes counter.
//
// Like does not check-then-insert: it inserts unconditionally and lets the
// unique (post_id, user_id) index reject the duplicate. Two concurrent likes
// for the same pair therefore produce exactly one record and one increment.
// The record insert and the counter update are still two store round trips;
// the counter update itself is an atomic single-document $inc.
type LikeService struct {
	likes repository.LikeRepository
	posts repository.PostRepository
	users repository.UserRepository
}

func NewLikeService(
	likes repository.LikeRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
) *LikeService {
	return &LikeService{likes: likes, posts: posts, users: users}
}

// Like registers userID's like on postID and returns the post with the
// updated counter. Fails with duplicate_like if the pair already exists.
func (s *LikeService) Like(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.likes.Insert(ctx, postID, userID); err != nil {
		return nil, err
	}

	post, err := s.posts.IncLikes(ctx, postID, 1)
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostDetailsKey(postID.Hex()))
	slog.Info("post liked", "post_id", postID.Hex(), "user_id", userID.Hex(), "likes", post.Likes)
	return post, nil
}

// Unlike removes userID's like from postID and returns the post with the
// decremented counter. Fails with not_found if no like existed for the pair.
func (s *LikeService) Unlike(ctx context.Context, postID, userID primitive.ObjectID) (*models.Post, error) {
	if err := s.likes.Delete(ctx, postID, userID); err != nil {
		return nil, err
	}

	post, err := s.posts.IncLikes(ctx, postID, -1)
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.PostDetailsKey(postID.Hex()))
	slog.Info("post unliked", "post_id", postID.Hex(), "user_id", userID.Hex(), "likes", post.Likes)
	return post, nil
}
