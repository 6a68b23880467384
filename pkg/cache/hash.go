package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/licensefinder/pkg/errors"
)

// reportPrefix namespaces report keys.
const reportPrefix = "report"

// ReportKeyOpts holds the inputs besides adapter and path that change a
// generated report.
type ReportKeyOpts struct {
	IgnoredGroups []string // Excluded groups, in the order they are passed to the tool
	IncludeGroups bool     // Whether names are group-qualified
	Manifests     []string // Files, relative to the project, whose content is hashed
}

// ReportKey returns the cache key for an adapter's report of the project at
// projectPath. Missing manifests hash as empty so a later-created file
// changes the key.
func ReportKey(adapter, projectPath string, opts ReportKeyOpts) (string, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", projectPath)
	}

	manifests := make(map[string]string, len(opts.Manifests))
	for _, name := range opts.Manifests {
		data, err := os.ReadFile(filepath.Join(abs, name))
		if err != nil && !os.IsNotExist(err) {
			return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", name)
		}
		manifests[name] = Hash(data)
	}

	groups := opts.IgnoredGroups
	if groups == nil {
		groups = []string{}
	}
	return hashKey(reportPrefix, adapter, abs, groups, opts.IncludeGroups, manifests), nil
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
