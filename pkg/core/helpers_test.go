package core_test

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/core"
)

var errDiskFull = errors.New("disk full")

// failingStore accepts reads but rejects every write.
type failingStore struct {
	*memory.Store
}

func (f failingStore) Set(ctx context.Context, key, value string) error {
	return errDiskFull
}

// frozenClock always reports the same instant, so every id comes from the
// monotonic fallback.
func frozenClock() time.Time {
	return time.UnixMilli(1_700_000_000_000)
}

func newService(store core.Store) *core.Service {
	return core.NewService(store, core.Config{Clock: frozenClock})
}
