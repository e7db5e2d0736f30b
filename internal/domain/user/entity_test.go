//go:build unit

package user_test

import (
	"testing"

	"lendhub/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"first.last+tag@sub.example.co.uk",
		"  padded@example.com  ",
	}
	for _, s := range valid {
		_, err := user.NewEmail(s)
		assert.NoError(t, err, s)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"alice@",
		"alice@example",
		"a b@example.com",
	}
	for _, s := range invalid {
		_, err := user.NewEmail(s)
		assert.ErrorIs(t, err, user.ErrInvalidEmail, s)
	}
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)

	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser("Alice", email)
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email().Value())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		u, err := user.NewUser("  Alice  ", email)
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := user.NewUser("   ", email)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestRename(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)
	u := user.ReconstructUser(1, "Alice", email)

	require.NoError(t, u.Rename("Alicia"))
	assert.Equal(t, "Alicia", u.Name())

	assert.ErrorIs(t, u.Rename(" "), user.ErrEmptyName)
	assert.Equal(t, "Alicia", u.Name())
}
