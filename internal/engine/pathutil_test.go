package engine

import (
	"path/filepath"
	"testing"
)

func TestIsSafePath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{
			name:      "simple file",
			candidate: "file.txt",
			want:      true,
		},
		{
			name:      "nested path",
			candidate: "sub/dir/file.txt",
			want:      true,
		},
		{
			name:      "redundant components that stay inside",
			candidate: "./foo/../bar/baz.txt",
			want:      true,
		},
		{
			name:      "parent escape - rejected",
			candidate: "../secret.txt",
			want:      false,
		},
		{
			name:      "deep escape - rejected",
			candidate: "../../../etc/passwd",
			want:      false,
		},
		{
			name:      "escape hidden behind a safe prefix - rejected",
			candidate: "sub/../../outside.txt",
			want:      false,
		},
		{
			name:      "absolute path outside the base - rejected",
			candidate: "/etc/passwd",
			want:      false,
		},
		{
			name:      "absolute path inside the base",
			candidate: filepath.Join(base, "inside.txt"),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSafePath(base, tt.candidate); got != tt.want {
				t.Errorf("IsSafePath(%q, %q) = %v, want %v", base, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestIsSafePath_SiblingWithBasePrefix(t *testing.T) {
	// /tmp/x/base-evil must not count as inside /tmp/x/base.
	base := filepath.Join(t.TempDir(), "base")
	if IsSafePath(base, filepath.Join(base+"-evil", "file.txt")) {
		t.Error("sibling directory sharing the base prefix was reported safe")
	}
}
