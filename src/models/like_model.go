package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like records one user liking one post. A unique index on (post_id, user_id)
// makes the one-like-per-pair invariant hold even under concurrent requests.
type Like struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PostID    primitive.ObjectID `json:"post_id" bson:"post_id"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
