package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment references its post and author by id. The referenced entities must
// exist when the comment is created; deleting them later is handled by the
// cascade service, which removes the comments along with them.
type Comment struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PostID       primitive.ObjectID `json:"post_id" bson:"post_id"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id"`
	Content      string             `json:"content" bson:"content"`
	CreationDate time.Time          `json:"creation_date" bson:"creation_date"`
}

type CommentInput struct {
	PostID  string `json:"post_id"`
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

type PaginatedComments struct {
	Total int64     `json:"total"`
	Skip  int64     `json:"skip"`
	Limit int64     `json:"limit"`
	Data  []Comment `json:"data"`
}
