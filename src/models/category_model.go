package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PaginatedCategories struct {
	Total int64      `json:"total"`
	Skip  int64      `json:"skip"`
	Limit int64      `json:"limit"`
	Data  []Category `json:"data"`
}

// CategoryStat is one row of the popularity aggregation.
type CategoryStat struct {
	CategoryName string `json:"category_name" bson:"category_name"`
	PostCount    int64  `json:"post_count" bson:"post_count"`
}
