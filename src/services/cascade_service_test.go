package services

import (
	"context"
	"testing"

	"blogcms/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeleteCategoryDetachesPosts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tech := env.mustCategory(t, "Tech")
	other := env.mustCategory(t, "Travel")

	inTech := env.mustPost(t, "Go Tips", &tech.Id)
	alsoTech := env.mustPost(t, "Mongo Tricks", &tech.Id)
	elsewhere := env.mustPost(t, "Lisbon", &other.Id)

	require.NoError(t, env.cascades.DeleteCategory(ctx, tech.Id))

	_, err := env.categories.GetByIdentifier(ctx, tech.Id.Hex())
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	// posts survive, uncategorized
	for _, id := range []primitive.ObjectID{inTech.Id, alsoTech.Id} {
		got, err := env.posts.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
	}

	// unrelated posts keep their category
	got, err := env.posts.Get(ctx, elsewhere.Id)
	require.NoError(t, err)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, other.Id, *got.CategoryID)
}

func TestDeleteCategoryUnknown(t *testing.T) {
	env := newTestEnv()

	err := env.cascades.DeleteCategory(context.Background(), primitive.NewObjectID())
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestDeleteTagDetachesPostsAndAssociations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	python := env.mustTag(t, "python")
	golang := env.mustTag(t, "golang")

	first := env.mustPost(t, "Snakes", nil)
	second := env.mustPost(t, "Gophers And Snakes", nil)

	_, err := env.associations.Associate(ctx, first.Id, python.Id)
	require.NoError(t, err)
	_, err = env.associations.Associate(ctx, second.Id, python.Id)
	require.NoError(t, err)
	_, err = env.associations.Associate(ctx, second.Id, golang.Id)
	require.NoError(t, err)

	require.NoError(t, env.cascades.DeleteTag(ctx, python.Id))

	_, err = env.tags.GetByIdentifier(ctx, python.Id.Hex())
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	got, err := env.posts.Get(ctx, first.Id)
	require.NoError(t, err)
	assert.Empty(t, got.TagsID)

	got, err = env.posts.Get(ctx, second.Id)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{golang.Id}, got.TagsID)

	// only the golang association survives
	page, err := env.associations.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)
	assert.Equal(t, golang.Id, page.Data[0].TagID)
}

func TestDeletePostRemovesDependents(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tag := env.mustTag(t, "doomed")
	user := env.mustUser(t, "commenter")
	post := env.mustPost(t, "Short Lived", nil)
	survivor := env.mustPost(t, "Survivor", nil)

	_, err := env.associations.Associate(ctx, post.Id, tag.Id)
	require.NoError(t, err)
	_, err = env.comments.Create(ctx, post.Id, user.Id, "first!")
	require.NoError(t, err)
	_, err = env.likes.Like(ctx, post.Id, user.Id)
	require.NoError(t, err)
	_, err = env.likes.Like(ctx, survivor.Id, user.Id)
	require.NoError(t, err)

	require.NoError(t, env.cascades.DeletePost(ctx, post.Id))

	_, err = env.posts.Get(ctx, post.Id)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	comments, err := env.comments.ByPost(ctx, post.Id)
	require.NoError(t, err)
	assert.Empty(t, comments)

	page, err := env.associations.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)

	// the like pair is consumable again only on other posts; the survivor's
	// like record is untouched
	_, err = env.likes.Unlike(ctx, survivor.Id, user.Id)
	require.NoError(t, err)

	// tag itself survives the post's deletion
	_, err = env.tags.GetByIdentifier(ctx, tag.Id.Hex())
	require.NoError(t, err)
}

func TestDeletePostUnknown(t *testing.T) {
	env := newTestEnv()

	err := env.cascades.DeletePost(context.Background(), primitive.NewObjectID())
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestDeleteUserRemovesCommentsAndLikes(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	leaver := env.mustUser(t, "leaver")
	stayer := env.mustUser(t, "stayer")
	post := env.mustPost(t, "Liked By Both", nil)

	_, err := env.comments.Create(ctx, post.Id, leaver.Id, "bye")
	require.NoError(t, err)
	_, err = env.comments.Create(ctx, post.Id, stayer.Id, "hi")
	require.NoError(t, err)
	_, err = env.likes.Like(ctx, post.Id, leaver.Id)
	require.NoError(t, err)
	_, err = env.likes.Like(ctx, post.Id, stayer.Id)
	require.NoError(t, err)

	require.NoError(t, env.cascades.DeleteUser(ctx, leaver.Id))

	_, err = env.users.Get(ctx, leaver.Id)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	// only the stayer's comment remains
	comments, err := env.comments.ByPost(ctx, post.Id)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, stayer.Id, comments[0].UserID)

	// counter dropped by exactly the leaver's like
	got, err := env.posts.Get(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)

	// leaver's like record is gone, so the pair would be insertable again
	_, err = env.likes.Unlike(ctx, post.Id, leaver.Id)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestDeleteUserSkipsCountersOfDeletedPosts(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.mustUser(t, "lateleft")
	gone := env.mustPost(t, "Already Gone", nil)
	kept := env.mustPost(t, "Still Here", nil)

	_, err := env.likes.Like(ctx, gone.Id, user.Id)
	require.NoError(t, err)
	_, err = env.likes.Like(ctx, kept.Id, user.Id)
	require.NoError(t, err)

	require.NoError(t, env.cascades.DeletePost(ctx, gone.Id))
	require.NoError(t, env.cascades.DeleteUser(ctx, user.Id))

	got, err := env.posts.Get(ctx, kept.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Likes)
}
