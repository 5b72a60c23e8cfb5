package template_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"frameforge/internal/template"
)

func writeTemplate(t *testing.T, root, ref, source string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(ref))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadReadsSourceAndSize(t *testing.T) {
	root := t.TempDir()
	ref := "1080x1920/default.html"
	path := writeTemplate(t, root, ref, `<div>{{text}}</div>`)

	tpl, err := template.Load(ref, path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tpl.Source != `<div>{{text}}</div>` {
		t.Fatalf("unexpected source: %q", tpl.Source)
	}
	if tpl.Width != 1080 || tpl.Height != 1920 {
		t.Fatalf("unexpected size: %dx%d", tpl.Width, tpl.Height)
	}
	if !tpl.HasSize() {
		t.Fatal("expected HasSize to be true")
	}
}

func TestLoadMissingFileIsNotFound(t *testing.T) {
	_, err := template.Load("x.html", filepath.Join(t.TempDir(), "absent.html"))
	if !errors.Is(err, template.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadWithoutSizeSegment(t *testing.T) {
	root := t.TempDir()
	path := writeTemplate(t, root, "plain.html", "<p></p>")
	tpl, err := template.Load("plain.html", path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tpl.HasSize() {
		t.Fatalf("expected no size, got %dx%d", tpl.Width, tpl.Height)
	}
}

func TestSizeFromPath(t *testing.T) {
	cases := []struct {
		path   string
		width  int
		height int
		ok     bool
	}{
		{"1080x1920/default.html", 1080, 1920, true},
		{"/srv/templates/1080x1440/image_default.html", 1080, 1440, true},
		{`C:\templates\720x1280\clip.html`, 720, 1280, true},
		{"640x480/nested/100x200/a.html", 640, 480, true}, // first segment wins
		{"default.html", 0, 0, false},
		{"10x/broken.html", 0, 0, false},
		{"0x100/zero.html", 0, 0, false},
		{"axb/letters.html", 0, 0, false},
	}
	for _, tc := range cases {
		w, h, ok := template.SizeFromPath(tc.path)
		if w != tc.width || h != tc.height || ok != tc.ok {
			t.Errorf("SizeFromPath(%q) = %d, %d, %v; want %d, %d, %v",
				tc.path, w, h, ok, tc.width, tc.height, tc.ok)
		}
	}
}

func TestResolverSearchesRootsInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeTemplate(t, second, "1080x1920/default.html", "second")
	resolver := template.NewResolver(first, second)

	path, err := resolver.Resolve("1080x1920/default.html")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if filepath.Dir(filepath.Dir(path)) != second {
		t.Fatalf("expected path under second root, got %q", path)
	}

	// A copy in the first root should now shadow the second.
	writeTemplate(t, first, "1080x1920/default.html", "first")
	path, err = resolver.Resolve("1080x1920/default.html")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Fatalf("first root must win, got %q", data)
	}
}

func TestResolveUnknownReferenceIsNotFound(t *testing.T) {
	resolver := template.NewResolver(t.TempDir())
	_, err := resolver.Resolve("1080x1920/missing.html")
	if !errors.Is(err, template.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveRejectsEscapingReferences(t *testing.T) {
	root := t.TempDir()
	resolver := template.NewResolver(root)
	for _, ref := range []string{"", "../secret.html", "a/../../b.html", "/etc/passwd"} {
		if _, err := resolver.Resolve(ref); !errors.Is(err, template.ErrNotFound) {
			t.Errorf("Resolve(%q) should fail with ErrNotFound, got %v", ref, err)
		}
	}
}

func TestResolverListDeduplicatesAcrossRoots(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeTemplate(t, first, "1080x1920/default.html", "a")
	writeTemplate(t, second, "1080x1920/default.html", "b")
	writeTemplate(t, second, "720x1280/clip.html", "c")
	writeTemplate(t, second, "notes.txt", "not a template")

	resolver := template.NewResolver(first, second)
	refs, err := resolver.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("unexpected refs: %v", refs)
	}
}
