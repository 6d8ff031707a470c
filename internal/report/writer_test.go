package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriter_WriteAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	w := NewAtomicWriter(dir)

	path, err := w.Write("report.md", []byte("first"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "report.md") {
		t.Fatalf("unexpected path: %s", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "first" {
		t.Fatalf("expected %q, got %q", "first", content)
	}

	if _, err := w.Write("report.md", []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	content, _ = os.ReadFile(path)
	if string(content) != "second" {
		t.Fatalf("expected overwrite to %q, got %q", "second", content)
	}
}

func TestAtomicWriter_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	w := NewAtomicWriter(dir)

	for i := 0; i < 3; i++ {
		if _, err := w.Write("artifact.png", []byte{0x89, 'P', 'N', 'G'}); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("expected only the final artifact, found %v", names)
	}
}

func TestAtomicWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewAtomicWriter(dir)

	path, err := w.Write("report.md", []byte("content"))
	if err != nil {
		t.Fatalf("write into missing directory: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("artifact not on disk: %v", err)
	}
}
