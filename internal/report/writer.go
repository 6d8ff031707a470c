package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "catstat/internal/errors"
)

// AtomicWriter writes artifacts through a uniquely named temp file in the
// destination directory, renamed into place only after a complete write. A
// failure partway leaves no artifact behind, and an existing artifact of the
// same name is replaced in a single step.
type AtomicWriter struct {
	dir string
}

// NewAtomicWriter creates a writer rooted at dir. The directory is created
// on first write.
func NewAtomicWriter(dir string) *AtomicWriter {
	return &AtomicWriter{dir: dir}
}

// Dir returns the destination directory.
func (w *AtomicWriter) Dir() string {
	return w.dir
}

// Write stores data under name inside the writer's directory and returns the
// final path.
func (w *AtomicWriter) Write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", apperrors.WithCode(apperrors.CodeFileWriteError,
			fmt.Errorf("failed to create output directory %s: %w", w.dir, err))
	}

	final := filepath.Join(w.dir, name)
	// Temp file lives in the destination directory so the rename stays on
	// one filesystem.
	tmp := filepath.Join(w.dir, fmt.Sprintf(".%s.%s.tmp", name, uuid.New().String()[:8]))

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp) // Clean up on failure
		return "", apperrors.WithCode(apperrors.CodeFileWriteError,
			fmt.Errorf("failed to write %s: %w", final, err))
	}
	if err := os.Rename(tmp, final); err != nil {
		os.Remove(tmp)
		return "", apperrors.WithCode(apperrors.CodeFileWriteError,
			fmt.Errorf("failed to finalize %s: %w", final, err))
	}
	return final, nil
}
