package services

import (
	"context"
	"testing"
	"time"

	"blogcms/src/models"
	"blogcms/src/repository"
	"blogcms/src/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// testEnv bundles every service over one shared in-memory store.
type testEnv struct {
	store        *testutil.MemStore
	categories   *CategoryService
	tags         *TagService
	posts        *PostService
	comments     *CommentService
	users        *UserService
	likes        *LikeService
	associations *AssociationService
	cascades     *CascadeService
	dashboard    *DashboardService
}

func newTestEnv() *testEnv {
	store := testutil.NewMemStore()
	return &testEnv{
		store:        store,
		categories:   NewCategoryService(store.Categories()),
		tags:         NewTagService(store.Tags()),
		posts:        NewPostService(store.Posts(), store.Categories(), store.Tags(), store.Comments()),
		comments:     NewCommentService(store.Comments(), store.Posts(), store.Users()),
		users:        NewUserService(store.Users()),
		likes:        NewLikeService(store.Likes(), store.Posts(), store.Users()),
		associations: NewAssociationService(store.Associations(), store.Posts(), store.Tags()),
		cascades:     NewCascadeService(store.Categories(), store.Tags(), store.Posts(), store.Comments(), store.Users(), store.Likes(), store.Associations()),
		dashboard:    NewDashboardService(store.Posts(), store.Comments()),
	}
}

func (e *testEnv) mustCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category, err := e.categories.Create(context.Background(), models.CategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func (e *testEnv) mustTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag, err := e.tags.Create(context.Background(), models.TagInput{Name: name})
	require.NoError(t, err)
	return tag
}

func (e *testEnv) mustUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.users.Create(context.Background(), models.UserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) mustPost(t *testing.T, title string, categoryID *primitive.ObjectID, tagIDs ...primitive.ObjectID) *models.Post {
	t.Helper()
	post, err := e.posts.Create(context.Background(), models.PostInput{
		Title:           title,
		Content:         "content for " + title,
		Author:          models.AuthorProfile{Name: "Test Author"},
		PublicationDate: time.Now(),
		CategoryID:      categoryID,
		TagsID:          tagIDs,
	})
	require.NoError(t, err)
	return post
}

func listOpts(skip, limit int64) repository.PostListOptions {
	return repository.PostListOptions{Skip: skip, Limit: limit}
}
