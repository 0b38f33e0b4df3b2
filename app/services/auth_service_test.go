package services

import (
	"testing"
	"time"

	"chatter/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthService(t *testing.T) *AuthService {
	return NewAuthService(mock.NewUserRepository(), []byte("test-secret"), time.Hour)
}

func TestRegister(t *testing.T) {
	service := setupAuthService(t)

	t.Run("valid registration", func(t *testing.T) {
		user, err := service.Register("alice", "alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := service.Register("alice2", "alice@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := service.Register("al", "alice2@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidPayload)

		_, err = service.Register("alice3", "not-an-email", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidPayload)

		_, err = service.Register("alice4", "alice4@example.com", "abc")
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})
}

func TestLoginAndVerify(t *testing.T) {
	service := setupAuthService(t)
	user, err := service.Register("alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		token, err := service.Login("alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		userID, err := service.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login("nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewAuthService(mock.NewUserRepository(), []byte("test-secret"), -time.Minute)
		_, err := expired.Register("bob", "bob@example.com", "hunter22")
		require.NoError(t, err)

		token, err := expired.Login("bob@example.com", "hunter22")
		require.NoError(t, err)

		_, err = expired.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthService(mock.NewUserRepository(), []byte("other-secret"), time.Hour)
		_, err := other.Register("carol", "carol@example.com", "hunter22")
		require.NoError(t, err)

		token, err := other.Login("carol@example.com", "hunter22")
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.Error(t, err)
	})
}
