package services

import (
	"context"
	"time"

	"blogcms/src/cache"
	"blogcms/src/models"
	"blogcms/src/repository"
)

const dashboardTTL = 30 * time.Second

// DashboardService computes the cross-collection dashboard view.
type DashboardService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewDashboardService(posts repository.PostRepository, comments repository.CommentRepository) *DashboardService {
	return &DashboardService{posts: posts, comments: comments}
}

// Stats returns total post and comment counts plus the most popular category
// (the category with the most posts; nil when no post is categorized). When
// two categories tie, whichever the grouping yields first wins. The view is
// served cache-aside with a short TTL.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	err := cache.CacheAside(ctx, cache.DashboardStatsKey, &stats, dashboardTTL, func() error {
		totalPosts, err := s.posts.Count(ctx, repository.PostListOptions{})
		if err != nil {
			return err
		}
		totalComments, err := s.comments.Count(ctx)
		if err != nil {
			return err
		}
		top, err := s.posts.MostPopularCategory(ctx)
		if err != nil {
			return err
		}
		stats = models.DashboardStats{
			TotalPosts:          totalPosts,
			TotalComments:       totalComments,
			MostPopularCategory: top,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
