package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthorProfile is embedded in a post document. It has no collection of its
// own and lives only inside a Post.
type AuthorProfile struct {
	Name string `json:"name" bson:"name"`
	Bio  string `json:"bio,omitempty" bson:"bio,omitempty"`
}

// Post is the central document of the blog. CategoryID and TagsID reference
// other collections by id; there is no storage-enforced foreign key, so the
// cascade service keeps them consistent. Likes is a cached counter that must
// agree with the post_likes collection.
type Post struct {
	Id              primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title           string               `json:"title" bson:"title"`
	Content         string               `json:"content" bson:"content"`
	Author          AuthorProfile        `json:"author" bson:"author"`
	PublicationDate time.Time            `json:"publication_date" bson:"publication_date"`
	CategoryID      *primitive.ObjectID  `json:"category_id" bson:"category_id"`
	TagsID          []primitive.ObjectID `json:"tags_id" bson:"tags_id"`
	Likes           int64                `json:"likes" bson:"likes"`
}

type PostInput struct {
	Title           string               `json:"title"`
	Content         string               `json:"content"`
	Author          AuthorProfile        `json:"author"`
	PublicationDate time.Time            `json:"publication_date"`
	CategoryID      *primitive.ObjectID  `json:"category_id"`
	TagsID          []primitive.ObjectID `json:"tags_id"`
}

type PaginatedPosts struct {
	Total int64  `json:"total"`
	Skip  int64  `json:"skip"`
	Limit int64  `json:"limit"`
	Data  []Post `json:"data"`
}

// PostDetails aggregates a post with everything that references it.
// Category is nil when the post is uncategorized or its category was deleted;
// tags that no longer exist are omitted.
type PostDetails struct {
	Post     Post      `json:"post"`
	Category *Category `json:"category"`
	Tags     []Tag     `json:"tags"`
	Comments []Comment `json:"comments"`
}

// DashboardStats is the cross-collection summary served by the dashboard.
type DashboardStats struct {
	TotalPosts          int64         `json:"total_posts"`
	TotalComments       int64         `json:"total_comments"`
	MostPopularCategory *CategoryStat `json:"most_popular_category"`
}
