package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := NewUser("Alex", "Alex@Example.com", "hash")
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", u.Email())
		assert.False(t, u.IsAdmin())
		assert.False(t, u.IsExternal())
		assert.Equal(t, "en", u.Language())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewUser("", "a@b.com", "hash")
		assert.Error(t, err)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		for _, email := range []string{"", "nodomain", "@example.com", "user@"} {
			_, err := NewUser("Alex", email, "hash")
			assert.Error(t, err, "email %q should be rejected", email)
		}
	})
}

func TestNewExternalUser(t *testing.T) {
	u, err := NewExternalUser("Portal Customer", "customer@example.com")
	require.NoError(t, err)
	assert.True(t, u.IsExternal())
	assert.False(t, u.HasPassword())
}

func TestUser_PromoteToAdmin(t *testing.T) {
	t.Run("internal user can be promoted", func(t *testing.T) {
		u, err := NewUser("Agent", "agent@example.com", "hash")
		require.NoError(t, err)

		require.NoError(t, u.PromoteToAdmin())
		assert.True(t, u.IsAdmin())

		u.DemoteFromAdmin()
		assert.False(t, u.IsAdmin())
	})

	t.Run("external user can never be admin", func(t *testing.T) {
		u, err := NewExternalUser("Customer", "customer@example.com")
		require.NoError(t, err)

		err = u.PromoteToAdmin()
		assert.ErrorContains(t, err, "external users cannot be promoted")
		assert.False(t, u.IsAdmin())
	})
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("Agent", "agent@example.com", "old-hash")
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword("new-hash"))
	assert.Equal(t, "new-hash", u.PasswordHash())

	assert.Error(t, u.ChangePassword(""))
}

func TestUser_LinkSSO(t *testing.T) {
	u, err := NewExternalUser("Customer", "customer@example.com")
	require.NoError(t, err)

	require.NoError(t, u.LinkSSO("google-subject-123"))
	assert.Equal(t, "google-subject-123", u.SSOSubject())

	assert.Error(t, u.LinkSSO(""))
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := NewUser("Agent", "agent@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, u.UpdateProfile("Renamed", "Renamed@Example.com", "de"))
	assert.Equal(t, "Renamed", u.Name())
	assert.Equal(t, "renamed@example.com", u.Email())
	assert.Equal(t, "de", u.Language())

	// Empty language keeps the previous value.
	require.NoError(t, u.UpdateProfile("Renamed", "renamed@example.com", ""))
	assert.Equal(t, "de", u.Language())

	assert.Error(t, u.UpdateProfile("", "renamed@example.com", ""))
}

func TestReconstructUser(t *testing.T) {
	u, err := NewUser("Agent", "agent@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, u.SetID(8))

	rebuilt, err := ReconstructUser(
		u.ID(), u.Name(), u.Email(), u.PasswordHash(),
		u.IsAdmin(), u.IsExternal(), u.Language(), u.SSOSubject(),
		u.CreatedAt(), u.UpdatedAt(),
	)
	require.NoError(t, err)
	assert.Equal(t, u.Email(), rebuilt.Email())

	_, err = ReconstructUser(0, "n", "a@b.com", "", false, false, "en", "", u.CreatedAt(), u.UpdatedAt())
	assert.Error(t, err)
}
