package platform_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

func TestNew(t *testing.T) {
	for _, adapter := range []string{platform.AdapterFS, platform.AdapterSQLite} {
		t.Run(adapter, func(t *testing.T) {
			dir := t.TempDir()
			ctx := context.Background()

			svc, err := platform.New(dir, platform.WithAdapter(adapter))
			require.NoError(t, err)

			_, err = svc.Dispatch(ctx, core.Command{Kind: core.CmdSetTitle, Text: "Buy Milk"})
			require.NoError(t, err)
			v, err := svc.Dispatch(ctx, core.Command{Kind: core.CmdSaveDraft})
			require.NoError(t, err)
			require.NotZero(t, v.Created)
			require.NoError(t, svc.Close())

			reopened, err := platform.New(dir, platform.WithAdapter(adapter))
			require.NoError(t, err)
			defer reopened.Close()

			notes := reopened.View().Notes
			require.Len(t, notes, 1)
			assert.Equal(t, v.Created, notes[0].ID)
			assert.Equal(t, "Buy Milk", notes[0].Title)
		})
	}
}

func TestNew_Options(t *testing.T) {
	fixed := time.UnixMilli(42)
	svc, err := platform.New("",
		platform.WithAdapter(platform.AdapterMemory),
		platform.WithSeedCategories("Inbox", "Later"),
		platform.WithClock(func() time.Time { return fixed }),
	)
	require.NoError(t, err)

	v := svc.View()
	assert.Equal(t, []string{"Inbox", "Later"}, v.Categories)
	assert.Equal(t, "Inbox", v.Draft.Category)

	_, _ = svc.Dispatch(context.Background(), core.Command{Kind: core.CmdSetTitle, Text: "x"})
	v, err = svc.Dispatch(context.Background(), core.Command{Kind: core.CmdSaveDraft})
	require.NoError(t, err)
	assert.Equal(t, core.NoteID(42), v.Created)
}
