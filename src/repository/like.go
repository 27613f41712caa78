package repository

import (
	"context"
	"time"

	"blogcms/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeRepository defines data operations on the post_likes collection.
//
// Insert relies on the unique (post_id, user_id) index: the duplicate check is
// the insert itself, so two concurrent likes for the same pair can never both
// succeed.
type LikeRepository interface {
	Insert(ctx context.Context, postID, userID primitive.ObjectID) (*models.Like, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Like, error)
	Delete(ctx context.Context, postID, userID primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type likeRepository struct {
	coll *mongo.Collection
}

// NewLikeRepository creates a like repository over db.
func NewLikeRepository(db *mongo.Database) LikeRepository {
	return &likeRepository{coll: db.Collection("post_likes")}
}

func (r *likeRepository) Insert(ctx context.Context, postID, userID primitive.ObjectID) (*models.Like, error) {
	like := models.Like{
		Id:        primitive.NewObjectID(),
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, models.NewDuplicateLikeError()
		}
		return nil, internalErr(err)
	}
	return &like, nil
}

func (r *likeRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Like, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	likes := []models.Like{}
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, internalErr(err)
	}
	return likes, nil
}

func (r *likeRepository) Delete(ctx context.Context, postID, userID primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID})
	if err != nil {
		return internalErr(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("like", postID.Hex())
	}
	return nil
}

func (r *likeRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, internalErr(err)
	}
	return result.DeletedCount, nil
}

func (r *likeRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, internalErr(err)
	}
	return result.DeletedCount, nil
}
