package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/blobsplit/internal/fsops"
)

// failingFS wraps RealFS and fails AtomicWrite once a given path is hit.
type failingFS struct {
	*fsops.RealFS
	failPath string
}

func (fs *failingFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if filepath.Base(path) == fs.failPath {
		return fmt.Errorf("disk full")
	}
	return fs.RealFS.AtomicWrite(path, data, perm)
}

func TestWrite_CreatesFilesAndParents(t *testing.T) {
	outputDir := t.TempDir()
	eng := New(fsops.NewRealFS())

	result, err := eng.Write(&WriteRequest{
		OutputDir: outputDir,
		Sections: []Section{
			{Path: "a.txt", Content: "hello\n"},
			{Path: "sub/dir/file.txt", Content: "nested"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Written) != 2 {
		t.Fatalf("got %d written files, want 2", len(result.Written))
	}

	got, err := os.ReadFile(filepath.Join(outputDir, "a.txt"))
	if err != nil {
		t.Fatalf("reading a.txt: %v", err)
	}
	if string(got) != "hello\n" {
		t.Errorf("a.txt content = %q, want %q", got, "hello\n")
	}

	got, err = os.ReadFile(filepath.Join(outputDir, "sub", "dir", "file.txt"))
	if err != nil {
		t.Fatalf("reading nested file: %v", err)
	}
	if string(got) != "nested" {
		t.Errorf("nested content = %q, want %q", got, "nested")
	}
}

func TestWrite_DuplicatePathLastWriteWins(t *testing.T) {
	outputDir := t.TempDir()
	eng := New(fsops.NewRealFS())

	_, err := eng.Write(&WriteRequest{
		OutputDir: outputDir,
		Sections: []Section{
			{Path: "a.txt", Content: "first\n"},
			{Path: "a.txt", Content: "second\n"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(outputDir, "a.txt"))
	if err != nil {
		t.Fatalf("reading a.txt: %v", err)
	}
	if string(got) != "second\n" {
		t.Errorf("a.txt content = %q, want %q", got, "second\n")
	}
}

func TestWrite_UnsafePathAborts(t *testing.T) {
	outputDir := t.TempDir()
	eng := New(fsops.NewRealFS())

	result, err := eng.Write(&WriteRequest{
		OutputDir: outputDir,
		Sections: []Section{
			{Path: "safe.txt", Content: "ok"},
			{Path: "../escape.txt", Content: "nope"},
			{Path: "never.txt", Content: "unreached"},
		},
	})

	if !errors.Is(err, ErrUnsafePath) {
		t.Fatalf("expected ErrUnsafePath, got: %v", err)
	}

	// The safe file before the unsafe one was written and reported
	if len(result.Written) != 1 {
		t.Fatalf("got %d written files, want 1", len(result.Written))
	}
	if filepath.Base(result.Written[0]) != "safe.txt" {
		t.Errorf("written[0] = %q, want safe.txt", result.Written[0])
	}

	// Nothing after the failure was written
	if _, statErr := os.Stat(filepath.Join(outputDir, "never.txt")); !os.IsNotExist(statErr) {
		t.Error("file after the unsafe path was written")
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(outputDir), "escape.txt")); !os.IsNotExist(statErr) {
		t.Error("unsafe path was written outside the output directory")
	}
}

func TestWrite_StopsOnFirstIOError(t *testing.T) {
	outputDir := t.TempDir()
	eng := New(&failingFS{RealFS: fsops.NewRealFS(), failPath: "b.txt"})

	result, err := eng.Write(&WriteRequest{
		OutputDir: outputDir,
		Sections: []Section{
			{Path: "a.txt", Content: "one"},
			{Path: "b.txt", Content: "two"},
			{Path: "c.txt", Content: "three"},
		},
	})

	if err == nil {
		t.Fatal("expected write error, got nil")
	}

	if len(result.Written) != 1 {
		t.Fatalf("got %d written files, want 1", len(result.Written))
	}
	if filepath.Base(result.Written[0]) != "a.txt" {
		t.Errorf("written[0] = %q, want a.txt", result.Written[0])
	}

	if _, statErr := os.Stat(filepath.Join(outputDir, "c.txt")); !os.IsNotExist(statErr) {
		t.Error("file after the failing write was written")
	}
}

func TestValidateOutputDir(t *testing.T) {
	if err := ValidateOutputDir(t.TempDir()); err != nil {
		t.Errorf("existing directory reported invalid: %v", err)
	}

	err := ValidateOutputDir(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrOutputDirMissing) {
		t.Errorf("expected ErrOutputDirMissing, got: %v", err)
	}

	// A regular file is not a valid output directory
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := ValidateOutputDir(file); !errors.Is(err, ErrOutputDirMissing) {
		t.Errorf("expected ErrOutputDirMissing for regular file, got: %v", err)
	}
}
