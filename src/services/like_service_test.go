package services

import (
	"context"
	"sync"
	"testing"

	"blogcms/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLikeIncrementsCounter(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Likeable", nil)
	user := env.mustUser(t, "liker")

	updated, err := env.likes.Like(ctx, post.Id, user.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Likes)
}

func TestLikeTwiceIsConflictAndCounterUnchanged(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Once Only", nil)
	user := env.mustUser(t, "eager")

	_, err := env.likes.Like(ctx, post.Id, user.Id)
	require.NoError(t, err)

	_, err = env.likes.Like(ctx, post.Id, user.Id)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeDuplicateLike))

	// the failed second like must not have touched the counter
	got, err := env.posts.Get(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)
}

func TestUnlikeWithoutLikeIsNotFound(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Never Liked", nil)
	user := env.mustUser(t, "stranger")

	_, err := env.likes.Unlike(ctx, post.Id, user.Id)
	require.Error(t, err)
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	got, err := env.posts.Get(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Likes)
}

func TestLikeUnlikeRoundtrip(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Roundtrip", nil)
	user := env.mustUser(t, "fickle")

	_, err := env.likes.Like(ctx, post.Id, user.Id)
	require.NoError(t, err)

	updated, err := env.likes.Unlike(ctx, post.Id, user.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Likes)

	// the pair is free again after the unlike
	updated, err = env.likes.Like(ctx, post.Id, user.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Likes)
}

func TestLikeUnknownRefs(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Real Post", nil)
	user := env.mustUser(t, "realuser")

	_, err := env.likes.Like(ctx, post.Id, primitive.NewObjectID())
	assert.True(t, models.HasCode(err, models.CodeNotFound))

	_, err = env.likes.Like(ctx, primitive.NewObjectID(), user.Id)
	assert.True(t, models.HasCode(err, models.CodeNotFound))
}

func TestConcurrentLikesSamePair(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Contended", nil)
	user := env.mustUser(t, "racer")

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.likes.Like(ctx, post.Id, user.Id)
		}(i)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case models.HasCode(err, models.CodeDuplicateLike):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, duplicates)

	got, err := env.posts.Get(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Likes)
}

func TestConcurrentLikesDistinctUsers(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	post := env.mustPost(t, "Popular", nil)
	users := make([]*models.User, 8)
	for i := range users {
		users[i] = env.mustUser(t, "fan"+string(rune('a'+i)))
	}

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(id primitive.ObjectID) {
			defer wg.Done()
			_, err := env.likes.Like(ctx, post.Id, id)
			assert.NoError(t, err)
		}(u.Id)
	}
	wg.Wait()

	got, err := env.posts.Get(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(len(users)), got.Likes)
}
