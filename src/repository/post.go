package repository

import (
	"context"
	"time"

	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostListOptions controls pagination, filtering and ordering of List.
type PostListOptions struct {
	Skip        int64
	Limit       int64
	PublishedOn *time.Time // filters to posts published on that calendar day
	SortBy      string     // defaults to "likes"
	Ascending   bool
}

// PostRepository defines data operations on the posts collection, including
// the denormalized-field updates the consistency subsystem depends on.
type PostRepository interface {
	Insert(ctx context.Context, in models.PostInput) (*models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, in models.PostInput) (*models.Post, error)
	List(ctx context.Context, opts PostListOptions) ([]models.Post, error)
	Count(ctx context.Context, opts PostListOptions) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Post, error)
	FindByTag(ctx context.Context, tagID primitive.ObjectID) ([]models.Post, error)
	SearchByTitle(ctx context.Context, title string) ([]models.Post, error)

	// Denormalized tag set maintenance.
	AddTag(ctx context.Context, postID, tagID primitive.ObjectID) error
	PullTag(ctx context.Context, postID, tagID primitive.ObjectID) error
	PullTagFromAll(ctx context.Context, tagID primitive.ObjectID) (int64, error)

	// Cascade support.
	ClearCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)

	// Denormalized like counter. The update is a single-document atomic $inc.
	IncLikes(ctx context.Context, postID primitive.ObjectID, delta int64) (*models.Post, error)

	// MostPopularCategory runs the dashboard aggregation pipeline. Returns
	// nil when no post has a category.
	MostPopularCategory(ctx context.Context) (*models.CategoryStat, error)
}

type postRepository struct {
	coll *mongo.Collection
}

// NewPostRepository creates a post repository over db.
func NewPostRepository(db *mongo.Database) PostRepository {
	return &postRepository{coll: db.Collection("posts")}
}

func (r *postRepository) Insert(ctx context.Context, in models.PostInput) (*models.Post, error) {
	post := models.Post{
		Id:              primitive.NewObjectID(),
		Title:           in.Title,
		Content:         in.Content,
		Author:          in.Author,
		PublicationDate: in.PublicationDate,
		CategoryID:      in.CategoryID,
		TagsID:          in.TagsID,
		Likes:           0,
	}
	if post.TagsID == nil {
		post.TagsID = []primitive.ObjectID{}
	}
	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return nil, internalErr(err)
	}
	return &post, nil
}

func (r *postRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, wrapFindErr(err, "post", id.Hex())
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, id primitive.ObjectID, in models.PostInput) (*models.Post, error) {
	update := bson.M{"$set": bson.M{
		"title":            in.Title,
		"content":          in.Content,
		"author":           in.Author,
		"publication_date": in.PublicationDate,
		"category_id":      in.CategoryID,
		"tags_id":          in.TagsID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&post)
	if err != nil {
		return nil, wrapFindErr(err, "post", id.Hex())
	}
	return &post, nil
}

func listFilter(opts PostListOptions) bson.M {
	filter := bson.M{}
	if opts.PublishedOn != nil {
		day := opts.PublishedOn.Truncate(24 * time.Hour)
		filter["publication_date"] = bson.M{
			"$gte": day,
			"$lt":  day.Add(24 * time.Hour),
		}
	}
	return filter
}

func (r *postRepository) List(ctx context.Context, opts PostListOptions) ([]models.Post, error) {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "likes"
	}
	direction := -1
	if opts.Ascending {
		direction = 1
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: direction}}).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit)

	cursor, err := r.coll.Find(ctx, listFilter(opts), findOpts)
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, internalErr(err)
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context, opts PostListOptions) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, listFilter(opts))
	if err != nil {
		return 0, internalErr(err)
	}
	return count, nil
}

func (r *postRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return internalErr(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("post", id.Hex())
	}
	return nil
}

func (r *postRepository) FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]models.Post, error) {
	return r.findMany(ctx, bson.M{"category_id": categoryID})
}

func (r *postRepository) FindByTag(ctx context.Context, tagID primitive.ObjectID) ([]models.Post, error) {
	return r.findMany(ctx, bson.M{"tags_id": tagID})
}

func (r *postRepository) SearchByTitle(ctx context.Context, title string) ([]models.Post, error) {
	filter := bson.M{"title": bson.M{"$regex": regexEscape(title), "$options": "i"}}
	return r.findMany(ctx, filter)
}

func (r *postRepository) findMany(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, internalErr(err)
	}
	return posts, nil
}

// AddTag unions tagID into the post's tags_id set. $addToSet makes re-adding
// an existing tag a no-op.
func (r *postRepository) AddTag(ctx context.Context, postID, tagID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"tags_id": tagID}},
	)
	if err != nil {
		return internalErr(err)
	}
	return nil
}

func (r *postRepository) PullTag(ctx context.Context, postID, tagID primitive.ObjectID) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"tags_id": tagID}},
	)
	if err != nil {
		return internalErr(err)
	}
	return nil
}

func (r *postRepository) PullTagFromAll(ctx context.Context, tagID primitive.ObjectID) (int64, error) {
	result, err := r.coll.UpdateMany(ctx,
		bson.M{"tags_id": tagID},
		bson.M{"$pull": bson.M{"tags_id": tagID}},
	)
	if err != nil {
		return 0, internalErr(err)
	}
	return result.ModifiedCount, nil
}

func (r *postRepository) ClearCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	result, err := r.coll.UpdateMany(ctx,
		bson.M{"category_id": categoryID},
		bson.M{"$set": bson.M{"category_id": nil}},
	)
	if err != nil {
		return 0, internalErr(err)
	}
	return result.ModifiedCount, nil
}

func (r *postRepository) IncLikes(ctx context.Context, postID primitive.ObjectID, delta int64) (*models.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		bson.M{"$inc": bson.M{"likes": delta}},
		opts,
	).Decode(&post)
	if err != nil {
		return nil, wrapFindErr(err, "post", postID.Hex())
	}
	return &post, nil
}

func (r *postRepository) MostPopularCategory(ctx context.Context) (*models.CategoryStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"category_id": bson.M{"$ne": nil}}}},
		{{Key: "$group", Value: bson.M{"_id": "$category_id", "post_count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "post_count", Value: -1}}}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "category_details",
		}}},
		{{Key: "$unwind", Value: "$category_details"}},
		{{Key: "$project", Value: bson.M{
			"_id":           0,
			"category_name": "$category_details.name",
			"post_count":    1,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	var results []models.CategoryStat
	if err := cursor.All(ctx, &results); err != nil {
		return nil, internalErr(err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
