package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateProjectPath validates a project directory path supplied by the user.
//
// The rules are conservative:
//   - No empty paths
//   - No null bytes or control characters
//   - Maximum length of 4096 characters
//
// Absolute and relative paths are both accepted; existence is checked by
// the caller.
func ValidateProjectPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "project path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// groupNameRegex matches dependency scope names (compile, test, provided, ...).
var groupNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateGroupName validates a dependency group (scope) name.
// Group names end up comma-joined inside a single command-line flag, so
// separators, whitespace and shell metacharacters are rejected.
func ValidateGroupName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidGroup, "group name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidGroup, "group name too long (max 128 characters)")
	}
	if !groupNameRegex.MatchString(name) {
		return New(ErrCodeInvalidGroup, "invalid group name: %q", name)
	}
	return nil
}
