package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/jot/pkg/adapters/fs"
	"github.com/aretw0/jot/pkg/adapters/memory"
	"github.com/aretw0/jot/pkg/adapters/sqlite"
	"github.com/aretw0/jot/pkg/core"
)

// DatabaseFile is the file name used by the sqlite adapter inside a data directory.
const DatabaseFile = "jot.db"

// Init opens and initializes the store selected by the options.
// The uri argument is adapter-specific: a directory for "fs", a directory or
// database file (or ":memory:") for "sqlite", and ignored for "memory".
func Init(uri string, opts ...Option) (core.Store, error) {
	o := parseOptions(opts)

	if o.store != nil {
		return o.store, nil
	}

	var store core.Store
	var err error

	switch o.adapter {
	case AdapterFS, "":
		store, err = initFS(uri, o)
	case AdapterSQLite:
		store, err = initSQLite(uri, o)
	case AdapterMemory:
		store = memory.NewStore(memory.WithReadOnly(readOnly(o)))
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Initialize(context.Background()); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func readOnly(o *options) bool {
	ro, _ := o.config["read_only"].(bool)
	return ro
}

// resolvePath applies the dev sandbox rules to path.
func resolvePath(path string, o *options) string {
	tempDir, _ := o.config["temp_dir"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}
	isReadOnly := readOnly(o)

	bypassSafety := isReadOnly || !devSafety
	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolved := ResolveDataDir(path, useTemp)

	if o.logger != nil && IsDevRun() {
		switch {
		case isReadOnly:
			o.logger.Debug("running in READ-ONLY mode (bypassing dev sandbox)", "path", resolved)
		case bypassSafety:
			o.logger.Warn("running in UNSAFE mode (bypassing dev sandbox)", "path", resolved)
		default:
			o.logger.Debug("running in SAFE mode (dev sandbox enabled)", "path", resolved)
		}
	}
	if o.logger != nil && useTemp && resolved != filepath.Clean(path) {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", path, "resolved_path", resolved)
	}
	return resolved
}

// initFS builds the filesystem store.
func initFS(path string, o *options) (core.Store, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	ext, _ := o.config["extension"].(string)

	return fs.NewStore(fs.Config{
		Path:      resolvePath(path, o),
		MustExist: mustExist,
		ReadOnly:  readOnly(o),
		Logger:    o.logger,
		Extension: ext,
	}), nil
}

// initSQLite builds the sqlite store. A directory uri holds DatabaseFile.
func initSQLite(uri string, o *options) (core.Store, error) {
	dsn := uri
	if dsn != ":memory:" {
		if !strings.HasSuffix(dsn, ".db") && !strings.HasSuffix(dsn, ".sqlite") {
			dir := resolvePath(uri, o)
			mustExist, _ := o.config["must_exist"].(bool)
			if err := ensureDir(dir, mustExist || readOnly(o)); err != nil {
				return nil, err
			}
			dsn = filepath.Join(dir, DatabaseFile)
		} else {
			dir := resolvePath(filepath.Dir(uri), o)
			if err := ensureDir(dir, readOnly(o)); err != nil {
				return nil, err
			}
			dsn = filepath.Join(dir, filepath.Base(uri))
		}
	}

	if readOnly(o) && dsn != ":memory:" {
		if _, err := os.Stat(dsn); os.IsNotExist(err) {
			// Nothing to read: serve an empty, read-only view.
			return memory.NewStore(memory.WithReadOnly(true)), nil
		}
	}

	return sqlite.Open(sqlite.Config{
		DSN:      dsn,
		ReadOnly: readOnly(o),
		Logger:   o.logger,
	})
}

func ensureDir(dir string, mustExist bool) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	if mustExist {
		return fmt.Errorf("data directory does not exist: %s", dir)
	}
	return os.MkdirAll(dir, 0755)
}
