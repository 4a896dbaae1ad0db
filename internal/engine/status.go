package engine

import "path/filepath"

// Inspect parses the blob and classifies every section path against the
// output directory, without touching the filesystem beyond existence
// checks. The CLI shows the result to the operator before any write.
func (e *Engine) Inspect(req *InspectRequest) *InspectResult {
	sections := ParseSections(req.Content)

	result := &InspectResult{
		Sections: sections,
		Entries:  make([]StatusEntry, 0, len(sections)),
	}

	for _, sec := range sections {
		entry := StatusEntry{Path: sec.Path, Status: StatusNew}

		if !IsSafePath(req.OutputDir, sec.Path) {
			entry.Status = StatusUnsafe
			result.HasUnsafe = true
		} else {
			exists, err := e.fs.Exists(filepath.Join(req.OutputDir, sec.Path))
			if err == nil && exists {
				entry.Status = StatusExisting
			}
		}

		result.Entries = append(result.Entries, entry)
	}

	return result
}
