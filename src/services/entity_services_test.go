package services

import (
	"context"
	"testing"

	"blogcms/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func TestCategoryLookupByIDOrName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	category := env.mustCategory(t, "Science")

	byID, err := env.categories.GetByIdentifier(ctx, category.Id.Hex())
	require.NoError(t, err)
	assert.Equal(t, category.Id, byID.Id)

	// name lookup is exact but case-insensitive
	byName, err := env.categories.GetByIdentifier(ctx, "sCiEnCe")
	require.NoError(t, err)
	assert.Equal(t, category.Id, byName.Id)

	_, err = env.categories.GetByIdentifier(ctx, "Scien")
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	// a well-formed but unknown id does not fall back to name matching
	_, err = env.categories.GetByIdentifier(ctx, primitive.NewObjectID().Hex())
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestTagCreateRejectsDuplicateName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	env.mustTag(t, "unique")

	_, err := env.tags.Create(ctx, models.TagInput{Name: "unique"})
	assert.True(t, models.HasCode(err, models.CodeAlreadyExists))

	_, err = env.tags.Create(ctx, models.TagInput{Name: "UNIQUE"})
	assert.True(t, models.HasCode(err, models.CodeAlreadyExists))
}

func TestTagLookupByIDOrName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tag := env.mustTag(t, "lookup")

	byID, err := env.tags.GetByIdentifier(ctx, tag.Id.Hex())
	require.NoError(t, err)
	assert.Equal(t, tag.Id, byID.Id)

	byName, err := env.tags.GetByIdentifier(ctx, "lookup")
	require.NoError(t, err)
	assert.Equal(t, tag.Id, byName.Id)
}

func TestUserCreateHashesPasswordAndRejectsDuplicates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.users.Create(ctx, models.UserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))

	_, err = env.users.Create(ctx, models.UserInput{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})
	assert.True(t, models.HasCode(err, models.CodeAlreadyExists))

	_, err = env.users.Create(ctx, models.UserInput{
		Username: "alice",
		Email:    "different@example.com",
		Password: "other",
	})
	assert.True(t, models.HasCode(err, models.CodeAlreadyExists))
}

func TestUserUpdatePartialFields(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := env.mustUser(t, "renameme")
	newName := "renamed"

	updated, err := env.users.Update(ctx, user.Id, models.UserUpdate{Username: &newName})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, user.Email, updated.Email)

	newPassword := "fresh-password"
	updated, err = env.users.Update(ctx, user.Id, models.UserUpdate{Password: &newPassword})
	require.NoError(t, err)
	assert.NotEqual(t, "fresh-password", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("fresh-password")))
}

func TestCommentCreateValidatesReferences(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Commentable", nil)
	user := env.mustUser(t, "voice")

	comment, err := env.comments.Create(ctx, post.Id, user.Id, "hello")
	require.NoError(t, err)
	assert.Equal(t, post.Id, comment.PostID)
	assert.False(t, comment.CreationDate.IsZero())

	_, err = env.comments.Create(ctx, primitive.NewObjectID(), user.Id, "orphan")
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	_, err = env.comments.Create(ctx, post.Id, primitive.NewObjectID(), "ghost")
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestCommentUpdateAndDelete(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Editable Comments", nil)
	user := env.mustUser(t, "editor")

	comment, err := env.comments.Create(ctx, post.Id, user.Id, "v1")
	require.NoError(t, err)

	updated, err := env.comments.UpdateContent(ctx, comment.Id, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)

	require.NoError(t, env.comments.Delete(ctx, comment.Id))
	_, err = env.comments.Get(ctx, comment.Id)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}
