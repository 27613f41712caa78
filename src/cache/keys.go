package cache

// DashboardStatsKey caches the dashboard aggregate view.
const DashboardStatsKey = "dashboard:stats"

// PostDetailsKey caches the full-details view of one post.
func PostDetailsKey(postID string) string {
	return "post:details:" + postID
}
