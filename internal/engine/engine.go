// Package engine provides the core logic for blobsplit operations.
//
// The engine package acts as the orchestration layer between the CLI and
// the filesystem. It parses concatenated blobs into sections, classifies
// each section path against the output directory, and performs the writes.
//
// Key components:
//   - ParseSections: splits a blob on "===== FILE: path =====" markers
//   - IsSafePath: path-containment check against the output directory
//   - Engine.Inspect: pre-write status classification
//   - Engine.Write: ordered writes with stop-on-first-error semantics
package engine

import (
	"github.com/danieljhkim/blobsplit/internal/fsops"
)

// Engine orchestrates all blobsplit operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs fsops.FS
}

// New creates a new Engine with the given filesystem.
func New(fs fsops.FS) *Engine {
	return &Engine{fs: fs}
}
