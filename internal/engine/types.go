package engine

// Section is one parsed (path, content) unit of a concatenated blob.
// Path is the target path as written in the marker line, relative to the
// output directory. Content is the exact bytes between this section's
// marker and the next (or end of input), minus one leading newline.
type Section struct {
	Path    string
	Content string
}

// Status classifies a section path against the output directory.
type Status string

const (
	// StatusNew means the path is safe and no file exists at the target.
	StatusNew Status = "NEW"

	// StatusExisting means the path is safe and a file already exists there.
	StatusExisting Status = "EXISTING"

	// StatusUnsafe means the path escapes the output directory.
	StatusUnsafe Status = "UNSAFE PATH"
)

// InspectRequest represents a request to parse a blob and classify its
// sections before any write occurs.
type InspectRequest struct {
	// Content is the full concatenated blob.
	Content string

	// OutputDir is the directory the sections would be written under.
	OutputDir string
}

// InspectResult represents the pre-write classification of a blob.
type InspectResult struct {
	// Sections are the parsed sections in order of appearance.
	Sections []Section

	// Entries carry one status per section, in the same order.
	Entries []StatusEntry

	// HasUnsafe is true if any entry is StatusUnsafe.
	HasUnsafe bool
}

// StatusEntry pairs a section path with its classification.
type StatusEntry struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
}

// WriteRequest represents a request to write parsed sections to disk.
type WriteRequest struct {
	// Sections are written in order; duplicate paths overwrite.
	Sections []Section

	// OutputDir is the directory the sections are written under.
	OutputDir string
}

// WriteResult represents the outcome of a write run.
type WriteResult struct {
	// Written lists the full paths written so far, in order. On failure
	// it holds the files that made it to disk before the error.
	Written []string `json:"written"`
}
