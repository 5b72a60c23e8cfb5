package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Template holds the raw text of a loaded template plus the media size
// derived from its path. Instances are immutable once loaded; Load never
// caches, so a fresh Load observes on-disk edits.
type Template struct {
	// Ref is the caller-supplied reference, e.g. "1080x1920/default.html".
	Ref string
	// Path is the resolved absolute filesystem path.
	Path string
	// Source is the raw template text. No HTML validation is performed.
	Source string
	// Width and Height are parsed from the first WxH path segment; both are
	// zero when the path carries no size segment.
	Width  int
	Height int
}

// Load reads the template at path. ref is retained for diagnostics and for
// size derivation when the resolved path itself carries no WxH segment.
func Load(ref, path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	width, height, ok := SizeFromPath(path)
	if !ok {
		width, height, _ = SizeFromPath(ref)
	}

	return &Template{
		Ref:    ref,
		Path:   path,
		Source: string(data),
		Width:  width,
		Height: height,
	}, nil
}

// HasSize reports whether the template path carried a WxH segment.
func (t *Template) HasSize() bool {
	return t.Width > 0 && t.Height > 0
}
