package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Tag struct {
	Id   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
}

type TagInput struct {
	Name string `json:"name"`
}

type PaginatedTags struct {
	Total int64 `json:"total"`
	Skip  int64 `json:"skip"`
	Limit int64 `json:"limit"`
	Data  []Tag `json:"data"`
}
