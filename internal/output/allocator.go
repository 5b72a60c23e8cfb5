// Package output allocates collision-resistant destination paths for rendered
// frames and owns the final relocation of backend artifacts.
package output

import (
	"fmt"
	"os"
	"strings"

	"path/filepath"

	"github.com/google/uuid"

	"frameforge/internal/fileutil"
)

const (
	framePrefix  = "frame_"
	suffixLength = 16
)

// Allocator hands out output paths inside a configured directory. Names
// combine a fixed prefix with a random hexadecimal suffix, so concurrent
// renders do not collide.
type Allocator struct {
	dir string
}

// NewAllocator builds an allocator rooted at dir.
func NewAllocator(dir string) (*Allocator, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("output directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", dir, err)
	}
	return &Allocator{dir: dir}, nil
}

// Dir returns the canonical output directory.
func (a *Allocator) Dir() string {
	return a.dir
}

// Allocate returns a fresh output path of the form
// <dir>/frame_<16 hex chars>.png. The file is not created.
func (a *Allocator) Allocate() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength]
	return filepath.Join(a.dir, framePrefix+suffix+".png")
}

// Commit relocates a freshly written artifact from the backend's scratch
// location to its allocated destination. The move is part of the render's
// success criteria: on failure the scratch file is removed so no partial
// artifact survives, and the error propagates to fail the render.
func (a *Allocator) Commit(scratchPath, outputPath string) error {
	if err := fileutil.MoveFile(scratchPath, outputPath); err != nil {
		_ = os.Remove(scratchPath)
		return fmt.Errorf("relocate rendered frame: %w", err)
	}
	return nil
}
