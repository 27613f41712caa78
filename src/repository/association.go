package repository

import (
	"context"

	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AssociationRepository defines data operations on the post_tags collection.
type AssociationRepository interface {
	Insert(ctx context.Context, postID, tagID primitive.ObjectID) (*models.Association, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Association, error)
	List(ctx context.Context, skip, limit int64) ([]models.Association, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	DeleteByTag(ctx context.Context, tagID primitive.ObjectID) (int64, error)
}

type associationRepository struct {
	coll *mongo.Collection
}

// NewAssociationRepository creates an association repository over db.
func NewAssociationRepository(db *mongo.Database) AssociationRepository {
	return &associationRepository{coll: db.Collection("post_tags")}
}

func (r *associationRepository) Insert(ctx context.Context, postID, tagID primitive.ObjectID) (*models.Association, error) {
	association := models.Association{
		Id:     primitive.NewObjectID(),
		PostID: postID,
		TagID:  tagID,
	}
	if _, err := r.coll.InsertOne(ctx, association); err != nil {
		return nil, internalErr(err)
	}
	return &association, nil
}

func (r *associationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Association, error) {
	var association models.Association
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&association)
	if err != nil {
		return nil, wrapFindErr(err, "association", id.Hex())
	}
	return &association, nil
}

func (r *associationRepository) List(ctx context.Context, skip, limit int64) ([]models.Association, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	associations := []models.Association{}
	if err := cursor.All(ctx, &associations); err != nil {
		return nil, internalErr(err)
	}
	return associations, nil
}

func (r *associationRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, internalErr(err)
	}
	return count, nil
}

func (r *associationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return internalErr(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("association", id.Hex())
	}
	return nil
}

func (r *associationRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, internalErr(err)
	}
	return result.DeletedCount, nil
}

func (r *associationRepository) DeleteByTag(ctx context.Context, tagID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"tag_id": tagID})
	if err != nil {
		return 0, internalErr(err)
	}
	return result.DeletedCount, nil
}
