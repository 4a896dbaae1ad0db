package engine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write writes each section's content to its resolved path under the
// output directory, creating parent directories as needed. Sections are
// written in order; a duplicate path simply overwrites the earlier write.
// On the first error the run stops and the returned result still lists
// the files written up to that point, so the operator can see partial
// progress. Already-written files are not rolled back.
func (e *Engine) Write(req *WriteRequest) (*WriteResult, error) {
	result := &WriteResult{Written: []string{}}

	for _, sec := range req.Sections {
		// Re-check safety; the pre-write gate should have caught this
		if !IsSafePath(req.OutputDir, sec.Path) {
			return result, fmt.Errorf("%w: %s", ErrUnsafePath, sec.Path)
		}

		fullPath := filepath.Join(req.OutputDir, sec.Path)

		if err := e.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return result, fmt.Errorf("failed to create directory for %s: %w", sec.Path, err)
		}

		if err := e.fs.AtomicWrite(fullPath, []byte(sec.Content), 0644); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", sec.Path, err)
		}

		result.Written = append(result.Written, fullPath)
	}

	return result, nil
}

// ValidateOutputDir confirms the output directory exists and is a
// directory. Returns ErrOutputDirMissing otherwise.
func ValidateOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDirMissing, dir)
	}
	return nil
}
