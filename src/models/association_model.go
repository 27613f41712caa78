package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Association links one post to one tag. It is deliberately redundant with the
// post's embedded tags_id set; the association service writes both and the
// cascade service cleans both.
type Association struct {
	Id     primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PostID primitive.ObjectID `json:"post_id" bson:"post_id"`
	TagID  primitive.ObjectID `json:"tag_id" bson:"tag_id"`
}

type AssociationInput struct {
	PostID string `json:"post_id"`
	TagID  string `json:"tag_id"`
}

type PaginatedAssociations struct {
	Total int64         `json:"total"`
	Skip  int64         `json:"skip"`
	Limit int64         `json:"limit"`
	Data  []Association `json:"data"`
}
