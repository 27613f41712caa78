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

// CommentRepository defines data operations on the comments collection.
type CommentRepository interface {
	Insert(ctx context.Context, postID, userID primitive.ObjectID, content string) (*models.Comment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	FindByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Comment, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error)
}

type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository creates a comment repository over db.
func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{coll: db.Collection("comments")}
}

func (r *commentRepository) Insert(ctx context.Context, postID, userID primitive.ObjectID, content string) (*models.Comment, error) {
	comment := models.Comment{
		Id:           primitive.NewObjectID(),
		PostID:       postID,
		UserID:       userID,
		Content:      content,
		CreationDate: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return nil, internalErr(err)
	}
	return &comment, nil
}

func (r *commentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	var comment models.Comment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		return nil, wrapFindErr(err, "comment", id.Hex())
	}
	return &comment, nil
}

func (r *commentRepository) FindByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"post_id": postID})
	if err != nil {
		return nil, internalErr(err)
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, internalErr(err)
	}
	return comments, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) (*models.Comment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content}},
		opts,
	).Decode(&comment)
	if err != nil {
		return nil, wrapFindErr(err, "comment", id.Hex())
	}
	return &comment, nil
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, internalErr(err)
	}
	return count, nil
}

func (r *commentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return internalErr(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("comment", id.Hex())
	}
	return nil
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, internalErr(err)
	}
	return result.DeletedCount, nil
}

func (r *commentRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, internalErr(err)
	}
	return result.DeletedCount, nil
}
