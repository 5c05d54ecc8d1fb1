package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun reports whether the process is running via `go run` or `go test`.
// Both build their binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveDataDir returns the directory the store should use.
// With forceTemp the path is re-rooted under <tmp>/jot-dev, unless it already
// lives inside the temporary directory (e.g. t.TempDir()).
func ResolveDataDir(userPath string, forceTemp bool) string {
	if !forceTemp {
		if userPath == "" {
			return "."
		}
		return userPath
	}

	clean := filepath.Clean(userPath)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if err == nil && !strings.HasPrefix(rel, "..") && filepath.IsAbs(clean) {
		return clean
	}

	name := "default"
	if userPath != "" && userPath != "." && userPath != "./" {
		name = filepath.Base(clean)
		if name == "." || name == string(os.PathSeparator) {
			name = "default"
		}
	}
	return filepath.Join(os.TempDir(), "jot-dev", name)
}
