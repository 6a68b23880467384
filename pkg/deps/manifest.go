package deps

import (
	"os"
	"path/filepath"
)

// DetectManifest returns the first of names that exists as a regular file
// in dir. The second result is false if none does.
func DetectManifest(dir string, names ...string) (string, bool) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}
