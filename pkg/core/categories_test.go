package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func TestCategoryRegistry_Seeds(t *testing.T) {
	cases := map[string]map[string]string{
		"absent":    nil,
		"empty":     {core.KeyCategories: "[]"},
		"undefined": {core.KeyCategories: "undefined"},
		"malformed": {core.KeyCategories: `["Personal"`},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			reg := core.NewCategoryRegistry(memory.NewStore(memory.WithValues(values)), nil, nil)
			require.NoError(t, reg.Load(context.Background()))
			assert.Equal(t, []string{"Personal", "Business"}, reg.List())
			assert.Equal(t, "Personal", reg.Default())
		})
	}
}

func TestCategoryRegistry_PersistedReplacesSeeds(t *testing.T) {
	store := memory.NewStore(memory.WithValues(map[string]string{
		core.KeyCategories: `["Work","Home","Work"]`,
	}))
	reg := core.NewCategoryRegistry(store, nil, nil)
	require.NoError(t, reg.Load(context.Background()))

	assert.Equal(t, []string{"Work", "Home"}, reg.List())
	assert.Equal(t, "Work", reg.Default())
	assert.False(t, reg.Has("Personal"))
}

func TestCategoryRegistry_CustomSeeds(t *testing.T) {
	reg := core.NewCategoryRegistry(memory.NewStore(), []string{"Inbox", "", "Inbox", "Later"}, nil)
	require.NoError(t, reg.Load(context.Background()))
	assert.Equal(t, []string{"Inbox", "Later"}, reg.List())
}

func TestCategoryRegistry_Add(t *testing.T) {
	store := memory.NewStore()
	reg := core.NewCategoryRegistry(store, nil, nil)
	ctx := context.Background()
	require.NoError(t, reg.Load(ctx))

	added, err := reg.Add(ctx, "  Travel ")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"Personal", "Business", "Travel"}, reg.List())

	raw, ok, _ := store.Get(ctx, core.KeyCategories)
	require.True(t, ok)
	assert.JSONEq(t, `["Personal","Business","Travel"]`, raw)

	t.Run("Ignored Labels", func(t *testing.T) {
		writes := store.Writes()
		for _, label := range []string{"Travel", "", "   ", core.AllCategories} {
			added, err := reg.Add(ctx, label)
			require.NoError(t, err)
			assert.False(t, added, "label %q", label)
		}
		assert.Len(t, reg.List(), 3)
		assert.Equal(t, writes, store.Writes())
	})

	t.Run("Case Sensitive", func(t *testing.T) {
		added, err := reg.Add(ctx, "travel")
		require.NoError(t, err)
		assert.True(t, added)
		assert.True(t, reg.Has("travel"))
		assert.True(t, reg.Has("Travel"))
	})

	t.Run("Survives Reload", func(t *testing.T) {
		reloaded := core.NewCategoryRegistry(store, nil, nil)
		require.NoError(t, reloaded.Load(ctx))
		assert.Equal(t, reg.List(), reloaded.List())
	})
}

func TestCategoryRegistry_AddWriteFailure(t *testing.T) {
	reg := core.NewCategoryRegistry(failingStore{memory.NewStore()}, nil, nil)
	added, err := reg.Add(context.Background(), "Travel")
	assert.True(t, added)
	assert.ErrorIs(t, err, errDiskFull)
	assert.True(t, reg.Has("Travel"))
}
