package services

import (
	"context"
	"testing"
	"time"

	"blogcms/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatePostValidatesReferences(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tag := env.mustTag(t, "valid")
	missing := primitive.NewObjectID()

	_, err := env.posts.Create(ctx, models.PostInput{
		Title:           "Bad Category",
		PublicationDate: time.Now(),
		CategoryID:      &missing,
	})
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	_, err = env.posts.Create(ctx, models.PostInput{
		Title:           "Bad Tag",
		PublicationDate: time.Now(),
		TagsID:          []primitive.ObjectID{tag.Id, missing},
	})
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	// an uncategorized post with existing tags is fine
	post, err := env.posts.Create(ctx, models.PostInput{
		Title:           "Good",
		PublicationDate: time.Now(),
		TagsID:          []primitive.ObjectID{tag.Id},
	})
	require.NoError(t, err)
	assert.Nil(t, post.CategoryID)
}

func TestUpdatePostValidatesReferences(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Editable", nil)
	missing := primitive.NewObjectID()

	_, err := env.posts.Update(ctx, post.Id, models.PostInput{
		Title:      "Edited",
		CategoryID: &missing,
	})
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	_, err = env.posts.Update(ctx, missing, models.PostInput{Title: "Ghost"})
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestSearchByTitleIsCaseInsensitiveSubstring(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.mustPost(t, "Intro to MongoDB", nil)
	env.mustPost(t, "Advanced mongodb indexing", nil)
	env.mustPost(t, "Cooking with Rust", nil)

	found, err := env.posts.SearchByTitle(ctx, "MongoDB")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = env.posts.SearchByTitle(ctx, "quantum")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestByTagRequiresExistingTag(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tag := env.mustTag(t, "filterable")
	post := env.mustPost(t, "Findable", nil, tag.Id)
	env.mustPost(t, "Other", nil)

	found, err := env.posts.ByTag(ctx, tag.Id)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, post.Id, found[0].Id)

	_, err = env.posts.ByTag(ctx, primitive.NewObjectID())
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestFullDetailsComposesRelations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	category := env.mustCategory(t, "Tech")
	tag := env.mustTag(t, "go")
	user := env.mustUser(t, "reader")
	post := env.mustPost(t, "Detailed", &category.Id, tag.Id)

	_, err := env.comments.Create(ctx, post.Id, user.Id, "nice write-up")
	require.NoError(t, err)

	details, err := env.posts.FullDetails(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, post.Id, details.Post.Id)
	require.NotNil(t, details.Category)
	assert.Equal(t, "Tech", details.Category.Name)
	require.Len(t, details.Tags, 1)
	assert.Equal(t, "go", details.Tags[0].Name)
	require.Len(t, details.Comments, 1)
	assert.Equal(t, "nice write-up", details.Comments[0].Content)
}

func TestFullDetailsToleratesDanglingReferences(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	category := env.mustCategory(t, "Fleeting")
	tag := env.mustTag(t, "transient")
	post := env.mustPost(t, "Orphaned", &category.Id, tag.Id)

	// delete the referenced entities out from under the post without
	// running the cascades, leaving dangling ids behind
	require.NoError(t, env.store.Categories().Delete(ctx, category.Id))
	require.NoError(t, env.store.Tags().Delete(ctx, tag.Id))

	details, err := env.posts.FullDetails(ctx, post.Id)
	require.NoError(t, err)
	assert.Nil(t, details.Category)
	assert.Empty(t, details.Tags)
}

func TestFullDetailsUnknownPost(t *testing.T) {
	env := newTestEnv()

	_, err := env.posts.FullDetails(context.Background(), primitive.NewObjectID())
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestListPostsPagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		env.mustPost(t, "Post", nil)
	}

	page, err := env.posts.List(ctx, listOpts(0, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Data, 2)

	page, err = env.posts.List(ctx, listOpts(4, 2))
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)

	page, err = env.posts.List(ctx, listOpts(10, 2))
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}
