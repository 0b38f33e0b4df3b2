package mock

import (
	"testing"

	"chatter/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoriesReturnCopies(t *testing.T) {
	postRepo := NewPostRepository()
	userRepo := NewUserRepository()

	user := &models.User{Username: "alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, userRepo.Insert(user))

	post := &models.Post{Title: "Hi", Owner: user.ID, Description: "World of things"}
	require.NoError(t, postRepo.Insert(post))

	t.Run("mutating a found post does not touch the store", func(t *testing.T) {
		got, err := postRepo.FindByID(post.ID)
		require.NoError(t, err)
		got.AddLike(models.NewID())
		got.Title = "changed"

		fresh, err := postRepo.FindByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hi", fresh.Title)
		assert.Empty(t, fresh.Likes)
	})

	t.Run("mutating a found user does not touch the store", func(t *testing.T) {
		got, err := userRepo.FindByEmail("alice@example.com")
		require.NoError(t, err)
		got.Password = "overwritten"

		fresh, err := userRepo.FindByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hash", fresh.Password)
	})

	t.Run("caller mutations after insert do not touch the store", func(t *testing.T) {
		user.Password = "scribbled"

		fresh, err := userRepo.FindByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hash", fresh.Password)
	})

	t.Run("deleted document is an independent copy", func(t *testing.T) {
		stored, err := postRepo.FindByID(post.ID)
		require.NoError(t, err)

		deleted, err := postRepo.Delete(post.ID)
		require.NoError(t, err)
		deleted.Title = "changed"

		assert.Equal(t, "Hi", stored.Title)
	})
}
