package core_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

func newRepo(t *testing.T, store core.Store) *core.NoteRepository {
	t.Helper()
	repo := core.NewNoteRepository(store, core.NewIDGenerator(frozenClock), nil)
	require.NoError(t, repo.Load(context.Background()))
	return repo
}

func TestNoteRepository_Create(t *testing.T) {
	store := memory.NewStore()
	repo := newRepo(t, store)
	ctx := context.Background()

	id1, err := repo.Create(ctx, "Milk", "2 litres", "Personal")
	require.NoError(t, err)
	id2, err := repo.Create(ctx, "", "only a description", "Business")
	require.NoError(t, err)

	assert.NotZero(t, id1)
	assert.Greater(t, id2, id1, "ids are unique even within one millisecond")

	notes := repo.List()
	require.Len(t, notes, 2)
	assert.Equal(t, core.Note{ID: id1, Title: "Milk", Description: "2 litres", Category: "Personal"}, notes[0])
	assert.Equal(t, id2, notes[1].ID)

	raw, ok, _ := store.Get(ctx, core.KeyNotes)
	require.True(t, ok)
	assert.JSONEq(t, `[
		{"id":1700000000000,"input":"Milk","desc":"2 litres","category":"Personal"},
		{"id":1700000000001,"input":"","desc":"only a description","category":"Business"}
	]`, raw)
}

func TestNoteRepository_CreateRejectsBlank(t *testing.T) {
	store := memory.NewStore()
	repo := newRepo(t, store)

	for _, tc := range []struct{ title, desc string }{{"", ""}, {"  ", "\n\t"}} {
		id, err := repo.Create(context.Background(), tc.title, tc.desc, "Personal")
		require.NoError(t, err)
		assert.Zero(t, id)
	}

	assert.Empty(t, repo.List())
	assert.Zero(t, store.Writes(), "rejected creates never touch the store")
}

func TestNoteRepository_Update(t *testing.T) {
	repo := newRepo(t, memory.NewStore())
	ctx := context.Background()

	a, _ := repo.Create(ctx, "A", "a", "Personal")
	b, _ := repo.Create(ctx, "B", "b", "Personal")
	c, _ := repo.Create(ctx, "C", "c", "Business")
	before := repo.List()

	require.NoError(t, repo.Update(ctx, b, "B2", "b2", "Business"))

	after := repo.List()
	require.Len(t, after, 3)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[2], after[2])
	assert.Equal(t, core.Note{ID: b, Title: "B2", Description: "b2", Category: "Business"}, after[1])

	t.Run("Unknown Id Is a No-op", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, 42, "x", "y", "z"))
		if diff := cmp.Diff(after, repo.List()); diff != "" {
			t.Errorf("collection changed (-want +got):\n%s", diff)
		}
	})

	assert.True(t, repo.Found(a))
	assert.True(t, repo.Found(c))
}

func TestNoteRepository_Delete(t *testing.T) {
	store := memory.NewStore()
	repo := newRepo(t, store)
	ctx := context.Background()

	a, _ := repo.Create(ctx, "A", "", "Personal")
	b, _ := repo.Create(ctx, "B", "", "Personal")

	require.NoError(t, repo.Delete(ctx, a))
	once := repo.List()
	require.NoError(t, repo.Delete(ctx, a))
	assert.Equal(t, once, repo.List(), "delete is idempotent")
	require.Len(t, once, 1)
	assert.Equal(t, b, once[0].ID)

	t.Run("Deleting the Last Note Persists an Empty Collection", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, b))
		raw, ok, _ := store.Get(ctx, core.KeyNotes)
		require.True(t, ok)
		assert.Equal(t, "[]", raw)

		reloaded := newRepo(t, store)
		assert.Empty(t, reloaded.List())
	})
}

func TestNoteRepository_LoadMalformed(t *testing.T) {
	for name, raw := range map[string]string{
		"undefined sentinel": "undefined",
		"garbage":            "{{{",
		"null":               "null",
	} {
		t.Run(name, func(t *testing.T) {
			store := memory.NewStore(memory.WithValues(map[string]string{core.KeyNotes: raw}))
			repo := newRepo(t, store)

			notes := repo.List()
			assert.NotNil(t, notes)
			assert.Empty(t, notes)
		})
	}
}

func TestNoteRepository_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	repo := newRepo(t, store)
	ctx := context.Background()

	_, _ = repo.Create(ctx, "Milk", "", "Personal")
	_, _ = repo.Create(ctx, "Invoice", "March", "Business")
	_, _ = repo.Create(ctx, "Ünïcode ✓", "line\nbreak", "Travel")

	reloaded := newRepo(t, store)
	if diff := cmp.Diff(repo.List(), reloaded.List()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNoteRepository_IdsSurviveReload(t *testing.T) {
	store := memory.NewStore(memory.WithValues(map[string]string{
		core.KeyNotes: `[{"id":1800000000000,"input":"future","desc":"","category":"Personal"}]`,
	}))
	repo := newRepo(t, store)

	id, err := repo.Create(context.Background(), "next", "", "Personal")
	require.NoError(t, err)
	assert.Equal(t, core.NoteID(1800000000001), id)
}

func TestNoteRepository_WriteFailureKeepsMemoryState(t *testing.T) {
	repo := newRepo(t, failingStore{memory.NewStore()})

	id, err := repo.Create(context.Background(), "A", "", "Personal")
	assert.ErrorIs(t, err, errDiskFull)
	assert.NotZero(t, id)
	assert.True(t, repo.Found(id))
}

func TestNoteRepository_LoadReassignsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(memory.WithValues(map[string]string{
		core.KeyNotes: `[
			{"id":42,"input":"First","desc":"","category":"Personal"},
			{"id":42,"input":"Second","desc":"","category":"Personal"},
			{"id":7,"input":"Third","desc":"","category":"Business"}
		]`,
	}))
	repo := newRepo(t, store)

	notes := repo.List()
	require.Len(t, notes, 3)
	assert.Equal(t, core.NoteID(42), notes[0].ID, "the first note keeps its id")
	assert.Equal(t, core.NoteID(7), notes[2].ID)
	assert.NotEqual(t, core.NoteID(42), notes[1].ID)
	assert.NotEqual(t, core.NoteID(7), notes[1].ID)
	assert.Equal(t, "Second", notes[1].Title)

	reloaded := newRepo(t, store)
	assert.Empty(t, cmp.Diff(notes, reloaded.List()), "the repair is persisted")

	require.NoError(t, repo.Delete(ctx, 42))
	assert.False(t, repo.Found(42), "delete removes the only note left with that id")
	assert.Len(t, repo.List(), 2)

	require.NoError(t, repo.Update(ctx, notes[1].ID, "Second!", "", "Personal"))
	n, ok := repo.Get(notes[1].ID)
	require.True(t, ok)
	assert.Equal(t, "Second!", n.Title)
}

func TestNoteRepository_LoadDuplicatesReadOnly(t *testing.T) {
	store := memory.NewStore(memory.WithReadOnly(true), memory.WithValues(map[string]string{
		core.KeyNotes: `[{"id":1,"input":"A"},{"id":1,"input":"B"}]`,
	}))
	repo := newRepo(t, store)

	notes := repo.List()
	require.Len(t, notes, 2)
	assert.NotEqual(t, notes[0].ID, notes[1].ID, "ids are unique in memory even when the store rejects writes")
}
