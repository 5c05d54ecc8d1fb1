package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/internal/config"
	"github.com/aretw0/jot/pkg/core"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
			f.Changed = false
			return
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runJot runs the CLI against dir and returns what it printed on stdout.
func runJot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	fileConfig = config.Config{}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	base := []string{"--dir", dir, "--config", filepath.Join(dir, "none.yaml")}
	rootCmd.SetArgs(append(base, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func mustJot(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := runJot(t, dir, args...)
	require.NoError(t, err, "jot %v", args)
	return out
}

func createdID(t *testing.T, out string) string {
	t.Helper()
	id, ok := strings.CutPrefix(strings.TrimSpace(out), "Note created: ")
	require.True(t, ok, "unexpected output %q", out)
	return id
}

func TestCLI_AddListShow(t *testing.T) {
	dir := t.TempDir()

	milk := createdID(t, mustJot(t, dir, "add", "--title", "Buy Milk", "--desc", "two litres"))
	createdID(t, mustJot(t, dir, "add", "-t", "Invoice", "-d", "milk receipts", "-c", "Business"))

	out := mustJot(t, dir, "list")
	assert.Contains(t, out, "Buy Milk")
	assert.Contains(t, out, "Invoice")

	out = mustJot(t, dir, "list", "--search", "MILK")
	assert.Contains(t, out, "Buy Milk")
	assert.NotContains(t, out, "Invoice", "descriptions are not searched")

	out = mustJot(t, dir, "list", "--search", "milk", "--category", "Business")
	assert.Equal(t, "No matching results\n", out)

	out = mustJot(t, dir, "show", milk)
	assert.Equal(t, "Buy Milk\n[Personal]\n\ntwo litres\n", out)

	out = mustJot(t, dir, "list", "--json", "--category", "Business")
	var notes []core.Note
	require.NoError(t, json.Unmarshal([]byte(out), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Invoice", notes[0].Title)

	t.Run("Persisted Layout", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(dir, core.KeyNotes+".json"))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"input":"Buy Milk"`)
		assert.Contains(t, string(raw), `"desc":"two litres"`)
	})
}

func TestCLI_AddBlank(t *testing.T) {
	dir := t.TempDir()
	out := mustJot(t, dir, "add", "--title", "  ")
	assert.Contains(t, out, "Nothing to save")
	assert.Equal(t, "No matching results\n", mustJot(t, dir, "list"))
}

func TestCLI_Edit(t *testing.T) {
	dir := t.TempDir()
	id := createdID(t, mustJot(t, dir, "add", "--title", "Draft", "--desc", "keep me"))

	out := mustJot(t, dir, "edit", id, "--title", "Final", "--category", "Business")
	assert.Equal(t, "Note updated: "+id+"\n", out)
	assert.Equal(t, "Final\n[Business]\n\nkeep me\n", mustJot(t, dir, "show", id))

	t.Run("Unknown Id", func(t *testing.T) {
		_, err := runJot(t, dir, "edit", "12345", "--title", "x")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Nothing To Change", func(t *testing.T) {
		_, err := runJot(t, dir, "edit", id)
		assert.ErrorContains(t, err, "nothing to change")
	})

	t.Run("Blank Result Is Refused", func(t *testing.T) {
		_, err := runJot(t, dir, "edit", id, "--title", "", "--desc", " ")
		assert.Error(t, err)
		assert.Contains(t, mustJot(t, dir, "show", id), "Final")
	})

	t.Run("Invalid Id", func(t *testing.T) {
		_, err := runJot(t, dir, "edit", "abc", "--title", "x")
		assert.ErrorContains(t, err, "invalid note id")
	})
}

func TestCLI_Delete(t *testing.T) {
	dir := t.TempDir()
	id := createdID(t, mustJot(t, dir, "add", "--title", "Doomed"))

	assert.Equal(t, "Note deleted: "+id+"\n", mustJot(t, dir, "delete", id))
	_, err := runJot(t, dir, "delete", id)
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = runJot(t, dir, "show", id)
	assert.ErrorIs(t, err, core.ErrNotFound)

	raw, err := os.ReadFile(filepath.Join(dir, core.KeyNotes+".json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw), "deleting the last note clears the collection")
}

func TestCLI_Categories(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "Personal\nBusiness\n", mustJot(t, dir, "category", "list"))
	assert.Equal(t, "Category added: Travel\n", mustJot(t, dir, "category", "add", " Travel "))
	assert.Equal(t, "Category already exists: Travel\n", mustJot(t, dir, "category", "add", "Travel"))
	assert.Equal(t, "Personal\nBusiness\nTravel\n", mustJot(t, dir, "categories", "list"))

	_, err := runJot(t, dir, "category", "add", "all")
	assert.Error(t, err)
}

func TestCLI_Export(t *testing.T) {
	dir := t.TempDir()
	mustJot(t, dir, "add", "--title", "Milk", "--desc", "2l")

	var doc export
	require.NoError(t, json.Unmarshal([]byte(mustJot(t, dir, "export")), &doc))
	assert.Equal(t, []string{"Personal", "Business"}, doc.Categories)
	require.Len(t, doc.Notes, 1)
	assert.Equal(t, "Milk", doc.Notes[0].Title)

	out := mustJot(t, dir, "export", "--format", "yaml")
	var fromYAML export
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, doc, fromYAML)
	assert.Contains(t, out, "title: Milk")

	_, err := runJot(t, dir, "export", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestCLI_DevSandboxIsShared(t *testing.T) {
	data := filepath.Join(t.TempDir(), "notes")
	sandbox := t.TempDir()
	t.Setenv("TMPDIR", sandbox)

	id := createdID(t, mustJot(t, data, "add", "--title", "Milk"))

	out := mustJot(t, data, "list")
	assert.Contains(t, out, "Milk", "list reads what add wrote")

	out = mustJot(t, data, "show", id)
	assert.Contains(t, out, "Milk")

	mustJot(t, data, "category", "add", "Travel")
	out = mustJot(t, data, "category", "list")
	assert.Contains(t, out, "Travel")

	assert.DirExists(t, filepath.Join(sandbox, "jot-dev", "notes"))
	assert.NoDirExists(t, data, "writes never reach the real directory")
}

func TestCLI_SQLiteAdapter(t *testing.T) {
	dir := t.TempDir()
	id := createdID(t, mustJot(t, dir, "--adapter", "sqlite", "add", "--title", "In a database"))

	out := mustJot(t, dir, "--adapter", "sqlite", "show", id)
	assert.Contains(t, out, "In a database")

	_, err := os.Stat(filepath.Join(dir, "jot.db"))
	assert.NoError(t, err)

	out = mustJot(t, dir, "list")
	assert.Equal(t, "No matching results\n", out, "the fs adapter does not see sqlite data")
}

func TestCLI_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, config.FileName)
	require.NoError(t, config.Save(cfgPath, config.Config{
		Path:       filepath.Join(dir, "data"),
		Categories: []string{"Inbox", "Later"},
	}))

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--config", cfgPath, "category", "list"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "Inbox\nLater\n", out.String())
}

func TestCLI_State(t *testing.T) {
	dir := t.TempDir()
	mustJot(t, dir, "add", "--title", "A")

	var state struct {
		Component string         `json:"component"`
		State     map[string]any `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustJot(t, dir, "state")), &state))
	assert.Equal(t, "service", state.Component)
	assert.EqualValues(t, 1, state.State["notes"])
	assert.Equal(t, "fs-store", state.State["store_type"])
}

func TestCLI_Version(t *testing.T) {
	out := mustJot(t, t.TempDir(), "version")
	assert.True(t, strings.HasPrefix(out, "jot version "))
}
