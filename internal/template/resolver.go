package template

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Resolver locates template references inside the configured template roots.
// Roots are searched in order; the first root containing the reference wins.
type Resolver struct {
	roots []string
}

// NewResolver builds a resolver over the given roots. Empty entries are
// dropped.
func NewResolver(roots ...string) *Resolver {
	cleaned := make([]string, 0, len(roots))
	for _, root := range roots {
		if strings.TrimSpace(root) == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(root))
	}
	return &Resolver{roots: cleaned}
}

// Roots returns the search roots in resolution order.
func (r *Resolver) Roots() []string {
	return append([]string(nil), r.roots...)
}

// Resolve maps a reference like "1080x1920/default.html" to an existing
// readable absolute path. References that are absolute or escape the roots
// are rejected; a reference present in no root fails with ErrNotFound.
func (r *Resolver) Resolve(ref string) (string, error) {
	cleaned, err := cleanRef(ref)
	if err != nil {
		return "", err
	}
	for _, root := range r.roots {
		candidate := filepath.Join(root, filepath.FromSlash(cleaned))
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("resolve template path %s: %w", candidate, err)
		}
		return abs, nil
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// List walks every root and returns the references of all .html templates,
// relative to their root, without duplicates across roots.
func (r *Resolver) List() ([]string, error) {
	seen := make(map[string]struct{})
	var refs []string
	for _, root := range r.roots {
		err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}
			if info.IsDir() || !strings.EqualFold(filepath.Ext(p), ".html") {
				return nil
			}
			rel, err := filepath.Rel(root, p)
			if err != nil {
				return nil
			}
			ref := filepath.ToSlash(rel)
			if _, ok := seen[ref]; ok {
				return nil
			}
			seen[ref] = struct{}{}
			refs = append(refs, ref)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk template root %s: %w", root, err)
		}
	}
	return refs, nil
}

func cleanRef(ref string) (string, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	slashed := filepath.ToSlash(trimmed)
	if path.IsAbs(slashed) || (len(trimmed) > 1 && trimmed[1] == ':') {
		return "", fmt.Errorf("%w: absolute reference %q not allowed", ErrNotFound, ref)
	}
	cleaned := path.Clean(slashed)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: reference %q escapes template roots", ErrNotFound, ref)
	}
	return cleaned, nil
}
