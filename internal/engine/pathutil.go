package engine

import (
	"path/filepath"
	"strings"
)

// IsSafePath reports whether candidate, resolved against baseDir, stays at
// or below baseDir. Absolute candidates resolve to themselves, so they are
// only safe if they already point inside the base. Any resolution failure
// is treated as unsafe; this never returns an error.
func IsSafePath(baseDir, candidate string) bool {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return false
	}

	var target string
	if filepath.IsAbs(candidate) {
		target = filepath.Clean(candidate)
	} else {
		target = filepath.Join(base, candidate)
	}

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
