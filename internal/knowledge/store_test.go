package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReturnsCachedInstance(t *testing.T) {
	first, err := Load()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := Load()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoad_DatasetShape(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	items := store.Items()
	require.NotEmpty(t, items)

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title)
		assert.NotEmpty(t, item.Content)
		assert.NotEmpty(t, item.Keywords)
		assert.GreaterOrEqual(t, item.Priority, 1)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true

		_, ok := store.Categories()[item.Category]
		assert.True(t, ok, "item %s references unknown category %q", item.ID, item.Category)
	}

	assert.NotEmpty(t, store.Sources())
}

func TestItemByID(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	item, ok := store.ItemByID("eq-001")
	require.True(t, ok)
	assert.Equal(t, "Drop, Cover, and Hold On", item.Title)

	_, ok = store.ItemByID("nope")
	assert.False(t, ok)
}

func TestItemsByCategory(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	medical := store.ItemsByCategory("medical")
	require.NotEmpty(t, medical)
	for _, item := range medical {
		assert.Equal(t, "medical", item.Category)
	}

	assert.Empty(t, store.ItemsByCategory("unknown"))
}

func TestItemsByPriority(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	top := store.ItemsByPriority(1)
	require.NotEmpty(t, top)
	for _, item := range top {
		assert.Equal(t, 1, item.Priority)
	}
}
