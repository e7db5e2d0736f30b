//go:build unit

package item_test

import (
	"strings"
	"testing"

	"lendhub/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		it, err := item.NewItem("drill", "18V cordless drill", true, 100, nil)
		require.NoError(t, err)
		assert.Equal(t, "drill", it.Name())
		assert.True(t, it.Available())
		assert.True(t, it.IsOwnedBy(100))
		assert.False(t, it.IsOwnedBy(101))
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := item.NewItem("  ", "desc", true, 100, nil)
		assert.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := item.NewItem("drill", "   ", true, 100, nil)
		assert.ErrorIs(t, err, item.ErrEmptyDescription)
	})

	t.Run("name at maximum length", func(t *testing.T) {
		_, err := item.NewItem(strings.Repeat("a", item.MaxNameLength), "desc", true, 100, nil)
		assert.NoError(t, err)
	})

	t.Run("name over maximum length", func(t *testing.T) {
		_, err := item.NewItem(strings.Repeat("a", item.MaxNameLength+1), "desc", true, 100, nil)
		assert.ErrorIs(t, err, item.ErrNameTooLong)
	})
}

func TestItemPatch(t *testing.T) {
	it := item.ReconstructItem(10, "drill", "old", true, 100, nil)

	require.NoError(t, it.Rename("impact driver"))
	assert.Equal(t, "impact driver", it.Name())

	require.NoError(t, it.Describe("brushless"))
	assert.Equal(t, "brushless", it.Description())

	it.SetAvailable(false)
	assert.False(t, it.Available())

	assert.ErrorIs(t, it.Rename(""), item.ErrEmptyName)
	assert.ErrorIs(t, it.Describe(" "), item.ErrEmptyDescription)
}
