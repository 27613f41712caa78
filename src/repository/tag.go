package repository

import (
	"context"

	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TagRepository defines data operations on the tags collection.
type TagRepository interface {
	Insert(ctx context.Context, in models.TagInput) (*models.Tag, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tag, error)
	FindByName(ctx context.Context, name string) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tag, error)
	List(ctx context.Context, skip, limit int64) ([]models.Tag, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type tagRepository struct {
	coll *mongo.Collection
}

// NewTagRepository creates a tag repository over db.
func NewTagRepository(db *mongo.Database) TagRepository {
	return &tagRepository{coll: db.Collection("tags")}
}

func (r *tagRepository) Insert(ctx context.Context, in models.TagInput) (*models.Tag, error) {
	tag := models.Tag{
		Id:   primitive.NewObjectID(),
		Name: in.Name,
	}
	if _, err := r.coll.InsertOne(ctx, tag); err != nil {
		return nil, internalErr(err)
	}
	return &tag, nil
}

func (r *tagRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Tag, error) {
	var tag models.Tag
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err != nil {
		return nil, wrapFindErr(err, "tag", id.Hex())
	}
	return &tag, nil
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.coll.FindOne(ctx, bson.M{"name": exactNameFilter(name)}).Decode(&tag)
	if err != nil {
		return nil, wrapFindErr(err, "tag", name)
	}
	return &tag, nil
}

// FindByIDs returns the tags that still exist; ids without a matching
// document are silently omitted.
func (r *tagRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, internalErr(err)
	}
	return tags, nil
}

func (r *tagRepository) List(ctx context.Context, skip, limit int64) ([]models.Tag, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	tags := []models.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, internalErr(err)
	}
	return tags, nil
}

func (r *tagRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, internalErr(err)
	}
	return count, nil
}

func (r *tagRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return internalErr(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("tag", id.Hex())
	}
	return nil
}
