package editorconfig

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the literal file name searched for in each ancestor
// directory.
const ConfigFileName = ".editorconfig"

// Find searches upward from startDir for a .editorconfig file.
// It returns the path of the first one found and true, or "" and false if
// the filesystem root is reached without a hit. Find performs no caching;
// it is a pure function of current filesystem state.
func Find(startDir string) (string, bool) {
	dir := startDir
	for {
		if path, ok := configIn(dir); ok {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root.
			return "", false
		}
		dir = parent
	}
}

// configIn reports whether dir directly contains a .editorconfig file.
func configIn(dir string) (string, bool) {
	path := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}
