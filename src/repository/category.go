package repository

import (
	"context"

	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryRepository defines data operations on the categories collection.
type CategoryRepository interface {
	Insert(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context, skip, limit int64) ([]models.Category, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, in models.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type categoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository creates a category repository over db.
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{coll: db.Collection("categories")}
}

func (r *categoryRepository) Insert(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	category := models.Category{
		Id:          primitive.NewObjectID(),
		Name:        in.Name,
		Description: in.Description,
	}
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return nil, internalErr(err)
	}
	return &category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		return nil, wrapFindErr(err, "category", id.Hex())
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.coll.FindOne(ctx, bson.M{"name": exactNameFilter(name)}).Decode(&category)
	if err != nil {
		return nil, wrapFindErr(err, "category", name)
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context, skip, limit int64) ([]models.Category, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, internalErr(err)
	}
	return categories, nil
}

func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, internalErr(err)
	}
	return count, nil
}

func (r *categoryRepository) Update(ctx context.Context, id primitive.ObjectID, in models.CategoryInput) (*models.Category, error) {
	update := bson.M{"$set": bson.M{"name": in.Name, "description": in.Description}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var category models.Category
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&category)
	if err != nil {
		return nil, wrapFindErr(err, "category", id.Hex())
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return internalErr(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("category", id.Hex())
	}
	return nil
}
