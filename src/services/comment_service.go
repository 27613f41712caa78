package services

import (
	"context"

	"blogcms/src/cache"
	"blogcms/src/models"
	"blogcms/src/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentService handles comment CRUD. A comment's post and author must exist
// at creation time; they are not re-checked afterwards, so deleting either
// later is handled by the cascade service rather than by a back-reference.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	users    repository.UserRepository
}

func NewCommentService(
	comments repository.CommentRepository,
	posts repository.PostRepository,
	users repository.UserRepository,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users}
}

func (s *CommentService) Create(ctx context.Context, postID, userID primitive.ObjectID, content string) (*models.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Insert(ctx, postID, userID, content)
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, cache.DashboardStatsKey, cache.PostDetailsKey(postID.Hex()))
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	return s.comments.FindByID(ctx, id)
}

func (s *CommentService) ByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	return s.comments.FindByPost(ctx, postID)
}

func (s *CommentService) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Comment, error) {
	comment, err := s.comments.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.PostDetailsKey(comment.PostID.Hex()))
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id primitive.ObjectID) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}
	cache.Invalidate(ctx, cache.DashboardStatsKey, cache.PostDetailsKey(comment.PostID.Hex()))
	return nil
}
