package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/sqlite"
	"github.com/aretw0/jot/pkg/core"
)

func openStore(t *testing.T, cfg sqlite.Config) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestStore_InMemory(t *testing.T) {
	s := openStore(t, sqlite.Config{DSN: ":memory:"})
	ctx := context.Background()

	_, ok, err := s.Get(ctx, core.KeyNotes)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, core.KeyNotes, `[{"id":1,"input":"a","desc":"","category":"Personal"}]`))
	require.NoError(t, s.Set(ctx, core.KeyNotes, `[]`), "second write upserts")

	v, ok, err := s.Get(ctx, core.KeyNotes)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{core.KeyNotes}, keys)

	require.NoError(t, s.Delete(ctx, core.KeyNotes))
	_, ok, err = s.Get(ctx, core.KeyNotes)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "jot.db")
	ctx := context.Background()

	first, err := sqlite.Open(sqlite.Config{DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, first.Initialize(ctx))
	require.NoError(t, first.Set(ctx, core.KeyCategories, `["Personal","Business","Travel"]`))
	require.NoError(t, first.Close())

	second := openStore(t, sqlite.Config{DSN: dsn})
	v, ok, err := second.Get(ctx, core.KeyCategories)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["Personal","Business","Travel"]`, v)

	state, ok := second.State().(sqlite.StoreState)
	require.True(t, ok)
	assert.Equal(t, dsn, state.DSN)
	assert.Equal(t, "sqlite-store", second.ComponentType())
}

func TestStore_ReadOnly(t *testing.T) {
	s := openStore(t, sqlite.Config{DSN: filepath.Join(t.TempDir(), "ro.db"), ReadOnly: true})
	ctx := context.Background()

	_, ok, err := s.Get(ctx, core.KeyNotes)
	require.NoError(t, err, "missing table reads as empty in read-only mode")
	assert.False(t, ok)

	assert.ErrorIs(t, s.Set(ctx, core.KeyNotes, "[]"), core.ErrReadOnly)
	assert.ErrorIs(t, s.Delete(ctx, core.KeyNotes), core.ErrReadOnly)
}

func TestOpen_RequiresDSN(t *testing.T) {
	_, err := sqlite.Open(sqlite.Config{})
	assert.Error(t, err)
}
